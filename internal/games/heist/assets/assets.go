// Package assets loads the level layout and question bank, either from the
// copies embedded in the binary or from YAML files on disk.
package assets

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
	"gopkg.in/yaml.v3"
)

//go:embed level.yaml
var defaultLevelYAML []byte

//go:embed questions.yaml
var defaultQuestionsYAML []byte

// LevelFile is the on-disk level format.
type LevelFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// QuestionFile is the on-disk question bank format.
type QuestionFile struct {
	Questions []QuestionEntry `yaml:"questions"`
}

// QuestionEntry is one question record. Answer is the 0-based index of the
// correct option.
type QuestionEntry struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
	Pinned  bool     `yaml:"pinned,omitempty"`
}

// Level is a parsed, validated level.
type Level struct {
	Name string
	Grid *sim.Grid
}

// ParseLevel decodes and validates a level document.
func ParseLevel(data []byte) (Level, error) {
	var lf LevelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	g, err := sim.ParseLayout(lf.Rows)
	if err != nil {
		return Level{}, err
	}
	return Level{Name: lf.Name, Grid: g}, nil
}

// ParseBank decodes and validates a question bank document.
func ParseBank(data []byte) ([]sim.Question, error) {
	var qf QuestionFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	bank := make([]sim.Question, len(qf.Questions))
	for i, e := range qf.Questions {
		if len(e.Options) != sim.OptionCount {
			return nil, fmt.Errorf("question %d has %d options, want %d: %w",
				i, len(e.Options), sim.OptionCount, sim.ErrInvalidBank)
		}
		q := sim.Question{Prompt: e.Prompt, Correct: e.Answer, Pinned: e.Pinned}
		copy(q.Options[:], e.Options)
		bank[i] = q
	}

	if err := sim.ValidateBank(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// LoadLevel reads the level at path, or the embedded level when path is empty.
func LoadLevel(path string) (Level, error) {
	if path == "" {
		return ParseLevel(defaultLevelYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading level %s: %w", path, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadBank reads the question bank at path, or the embedded bank when path
// is empty.
func LoadBank(path string) ([]sim.Question, error) {
	if path == "" {
		return ParseBank(defaultQuestionsYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank %s: %w", path, err)
	}
	bank, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("parsing question bank %s: %w", path, err)
	}
	return bank, nil
}
