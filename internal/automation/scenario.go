package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thorny/internal/config"
	"github.com/san-kum/thorny/internal/metrics"
	"github.com/san-kum/thorny/internal/sim"
	"github.com/san-kum/thorny/internal/storage"
)

// Scenario is a scripted list of runs loaded from YAML.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from Preset (or the defaults) and overrides each
// field that is set, so an explicit seed: 0 is honored.
type ScenarioStep struct {
	Name   string `yaml:"name"`
	Preset string `yaml:"preset"`
	Seed   *int64 `yaml:"seed"`
	Bodies *int   `yaml:"bodies"`
	Frames *int   `yaml:"frames"`
	Save   bool   `yaml:"save"`
}

type StepResult struct {
	Name   string
	RunID  string
	Config config.Config
	Result *sim.Result
	Holder int
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}
	return &scenario, nil
}

func (st ScenarioStep) resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if st.Preset != "" {
		cfg = config.GetPreset(st.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", st.Preset)
		}
	}
	if st.Seed != nil {
		cfg.Seed = *st.Seed
	}
	if st.Bodies != nil {
		cfg.Bodies = *st.Bodies
	}
	if st.Frames != nil {
		cfg.Frames = *st.Frames
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes the steps in order, writing one progress line per
// step to progress. Steps marked Save go to store, which may be nil when
// none are. Results of the steps that finished are returned with any error.
func RunScenario(ctx context.Context, scenario *Scenario, store *storage.Store, progress io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step%d", i+1)
		}

		cfg, err := step.resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(progress, "running step %d/%d: %s (%d bodies, seed %d, %d frames)\n",
			i+1, len(scenario.Steps), name, cfg.Bodies, cfg.Seed, cfg.Frames)

		s, err := sim.New(cfg.Bodies, cfg.Seed)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, m := range metrics.Default() {
			s.AddMetric(m)
		}

		result, err := s.Run(ctx, cfg.Frames)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Name: name, Config: *cfg, Result: result, Holder: s.ActiveIndex()}
		if step.Save {
			if store == nil {
				return results, fmt.Errorf("step %d: save requested without a store", i+1)
			}
			if sr.RunID, err = store.Save(cfg.Seed, cfg.Bodies, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}
