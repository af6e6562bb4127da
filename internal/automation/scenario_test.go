package automation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/thorny/internal/storage"
)

const scenarioYAML = `name: smoke
description: a pair and the classic system
steps:
  - name: pair
    preset: pair
    frames: 40
  - bodies: 5
    seed: 9
    frames: 25
    save: true
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "smoke" || len(sc.Steps) != 2 {
		t.Fatalf("loaded %+v", sc)
	}
	if sc.Steps[1].Bodies == nil || *sc.Steps[1].Bodies != 5 || !sc.Steps[1].Save {
		t.Errorf("step 2 = %+v", sc.Steps[1])
	}

	if sc.Steps[0].Seed != nil {
		t.Errorf("step 1 seed = %d, want unset", *sc.Steps[0].Seed)
	}

	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); err == nil {
		t.Error("scenario without steps should fail")
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	store := storage.New(t.TempDir())
	var progress bytes.Buffer

	results, err := RunScenario(context.Background(), sc, store, &progress)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	pair := results[0]
	if pair.Name != "pair" || pair.Config.Bodies != 2 || pair.Result.StepsTaken != 40 {
		t.Errorf("pair step = %+v", pair)
	}
	if pair.RunID != "" {
		t.Error("unsaved step should have no run id")
	}

	second := results[1]
	if second.Name != "step2" || second.Config.Seed != 9 || second.RunID == "" {
		t.Errorf("second step = %+v", second)
	}
	meta, err := store.Load(second.RunID)
	if err != nil {
		t.Fatalf("saved run: %v", err)
	}
	if meta.Frames != 25 {
		t.Errorf("saved %d frames, want 25", meta.Frames)
	}

	if strings.Count(progress.String(), "running step") != 2 {
		t.Errorf("progress = %q", progress.String())
	}
}

func TestRunScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		step ScenarioStep
	}{
		{"unknown preset", ScenarioStep{Preset: "nope"}},
		{"negative bodies", ScenarioStep{Bodies: intp(-1)}},
		{"zero frames", ScenarioStep{Frames: intp(0)}},
		{"save without store", ScenarioStep{Frames: intp(5), Save: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := &Scenario{Steps: []ScenarioStep{tt.step}}
			if _, err := RunScenario(context.Background(), sc, nil, &bytes.Buffer{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func intp(v int) *int { return &v }

func TestExplicitZeroSeed(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, `steps:
  - preset: pair
    seed: 0
    frames: 10
`))
	if err != nil {
		t.Fatal(err)
	}
	results, err := RunScenario(context.Background(), sc, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if got := results[0].Config.Seed; got != 0 {
		t.Errorf("seed = %d, want 0 over the preset's seed", got)
	}
	if results[0].Config.Bodies != 2 {
		t.Errorf("bodies = %d, want the preset's 2", results[0].Config.Bodies)
	}
}
