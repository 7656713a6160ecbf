package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/udisondev/namap/internal/config"
)

// ConvertPorts reads the port export and writes the ports file.
func ConvertPorts(ctx context.Context, cfg config.Converter) error {
	start := time.Now()

	ports, err := loadPorts(cfg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := WriteJSON(cfg.PortsPath(), ports); err != nil {
		return fmt.Errorf("writing ports: %w", err)
	}

	slog.Info("ports converted",
		"count", len(ports),
		"file", cfg.PortsPath(),
		"flip_y", cfg.FlipY,
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}

// ConvertDistances reads the port export and writes the distances file.
func ConvertDistances(ctx context.Context, cfg config.Converter) error {
	start := time.Now()

	ports, err := loadPorts(cfg)
	if err != nil {
		return err
	}

	conv := NewConverter(cfg.Calibration, cfg.FlipY)
	distances, err := conv.Distances(ctx, ports, cfg.Workers)
	if err != nil {
		return fmt.Errorf("computing distances: %w", err)
	}

	if err := WriteJSON(cfg.DistancesPath(), distances); err != nil {
		return fmt.Errorf("writing distances: %w", err)
	}

	slog.Info("distances computed",
		"ports", len(ports),
		"pairs", len(distances),
		"workers", cfg.Workers,
		"file", cfg.DistancesPath(),
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}

func loadPorts(cfg config.Converter) ([]Port, error) {
	api, err := ReadPortExport(cfg.PortsExportPath())
	if err != nil {
		return nil, err
	}
	slog.Debug("port export read", "file", cfg.PortsExportPath(), "count", len(api))

	ports, err := NewConverter(cfg.Calibration, cfg.FlipY).Ports(api)
	if err != nil {
		return nil, fmt.Errorf("converting ports: %w", err)
	}
	return ports, nil
}

// WriteJSON writes v as JSON to path, creating parent directories.
func WriteJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
