package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Executed inside the generated package: favoring defaults on the way up and
// projecting back down must reproduce the summary's values.
const articleRoundTripTest = `package article

import "testing"

func TestSummaryRoundTrip(t *testing.T) {
	s := ArticleSummary{Id: 7, Title: "go"}

	full := s.IntoArticleDefaults("body text")
	if full.Id != s.Id || full.Title != s.Title || full.Body != "body text" {
		t.Fatalf("unexpected Article: %+v", full)
	}
	if full.PublishedAt.IsZero() {
		t.Fatal("publication time should fall back to time.Now()")
	}

	back := ArticleSummaryFromArticle(full)
	if back != s {
		t.Fatalf("round trip changed the summary: %+v != %+v", back, s)
	}
}
`

func TestGenerate_BasicExample_CompilesAndRoundTrips(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	mod := t.TempDir()
	outDir := filepath.Join(mod, "article")

	cmd := exec.Command("go", "run", "./cmd/variantgen", "gen",
		"--schema", filepath.Join(repoRoot, "examples", "basic", "schema.yaml"),
		"--out", outDir,
	)
	cmd.Dir = repoRoot
	b, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	err = os.WriteFile(filepath.Join(mod, "go.mod"),
		[]byte("module articlecheck\n\ngo 1.21\n"), 0o644)
	if err != nil {
		t.Fatalf("go.mod: %v", err)
	}

	err = os.WriteFile(filepath.Join(outDir, "roundtrip_test.go"),
		[]byte(articleRoundTripTest), 0o644)
	if err != nil {
		t.Fatalf("round-trip test: %v", err)
	}

	run := exec.Command("go", "test", "./article", "-count=1")
	run.Dir = mod
	b, err = run.CombinedOutput()
	if err != nil {
		t.Fatalf("generated package failed: %v\n%s", err, string(b))
	}
}
