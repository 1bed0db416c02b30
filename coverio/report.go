package coverio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jmapper/persistence"
)

// Report is the document written by WriteReport.
type Report struct {
	Cover       string      `yaml:"cover"`
	GeneratedAt time.Time   `yaml:"generated_at"`
	Runs        []RunReport `yaml:"runs"`
}

// RunReport summarizes one pipeline run.
type RunReport struct {
	RunID           string               `yaml:"run_id"`
	MinIntersection int                  `yaml:"min_intersection"`
	Curvature       string               `yaml:"curvature,omitempty"`
	UseMin          bool                 `yaml:"use_min"`
	Order           string               `yaml:"order"`
	Vertices        int                  `yaml:"vertices"`
	Edges           int                  `yaml:"edges"`
	PolicyGroups    int                  `yaml:"policy_groups"`
	EdgeCurvature   map[string]float64   `yaml:"edge_curvature,omitempty"`
	Diagrams        persistence.Diagrams `yaml:"diagrams"`
	Error           string               `yaml:"error,omitempty"`
}

// EncodeReport writes rep to w as YAML.
func EncodeReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("coverio: encode report: %w", err)
	}

	return enc.Close()
}

// DecodeReport reads a report written by EncodeReport.
func DecodeReport(r io.Reader) (Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, fmt.Errorf("coverio: decode report: %w", err)
	}

	return rep, nil
}

// WriteReport writes rep to path, creating parent directories. An existing
// file is only replaced when force is set.
func WriteReport(path string, rep Report, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = EncodeReport(f, rep); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ReportFilename derives a report file name from the run parameters, e.g.
// "results_plants_MI1-2_alpha0.5_min.yaml".
func ReportFilename(coverPath string, minIntersections []int, alpha float64, useMin bool) string {
	base := strings.TrimSuffix(filepath.Base(coverPath), filepath.Ext(coverPath))
	if base == "" || base == "." {
		base = "cover"
	}
	mis := make([]string, len(minIntersections))
	for i, k := range minIntersections {
		mis[i] = strconv.Itoa(k)
	}
	pool := "max"
	if useMin {
		pool = "min"
	}

	return fmt.Sprintf("results_%s_MI%s_alpha%s_%s.yaml",
		base, strings.Join(mis, "-"), strconv.FormatFloat(alpha, 'g', -1, 64), pool)
}
