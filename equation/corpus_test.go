package equation

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

type corpusCase struct {
	Input    string             `yaml:"input"`
	Terms    map[string]float64 `yaml:"terms"`
	Constant float64            `yaml:"constant"`
	Display  string             `yaml:"display"`
	Error    string             `yaml:"error"`
}

func loadCorpus(t *testing.T) []corpusCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.yaml"))
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	var cases []corpusCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("unmarshal corpus: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("corpus is empty")
	}
	return cases
}

func TestCorpus(t *testing.T) {
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Input, func(t *testing.T) {
			form, err := SimplifyExpression(tc.Input)

			if tc.Error != "" {
				if err == nil {
					t.Fatalf("SimplifyExpression(%q) = %v, want %s error", tc.Input, form, tc.Error)
				}
				if got := errorCategory(err); got != tc.Error {
					t.Errorf("error %v categorized as %s, want %s", err, got, tc.Error)
				}
				return
			}

			if err != nil {
				t.Fatalf("SimplifyExpression(%q) error = %v", tc.Input, err)
			}
			wantTerms := tc.Terms
			if wantTerms == nil {
				wantTerms = map[string]float64{}
			}
			if !reflect.DeepEqual(form.Terms, wantTerms) {
				t.Errorf("Terms = %v, want %v", form.Terms, wantTerms)
			}
			if form.Constant != tc.Constant {
				t.Errorf("Constant = %v, want %v", form.Constant, tc.Constant)
			}
			if tc.Display != "" {
				if got := form.String(); got != tc.Display {
					t.Errorf("String() = %q, want %q", got, tc.Display)
				}
			}
		})
	}
}
