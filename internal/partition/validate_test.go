package partition

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testAxes has 5 hue cells, 2 chroma cells and 2 value cells.
func testAxes(t *testing.T) *Axes {
	t.Helper()
	a, err := NewAxes(
		[]string{"5R", "5Y", "5G", "5B", "5P"},
		[]string{"0", "3", "INF"},
		[]string{"0", "5", "INF"},
	)
	if err != nil {
		t.Fatalf("NewAxes failed: %v", err)
	}
	return a
}

// tiling covers all 20 cells of testAxes exactly once. Region 4 is made of
// two blocks and wraps around the end of the hue axis.
func tiling() []Declaration {
	return []Declaration{
		{Region: 1, HueBegin: "5R", HueEnd: "5Y", ChromaBegin: "0", ChromaEnd: "INF", ValueBegin: "0", ValueEnd: "INF"},
		{Region: 2, HueBegin: "5Y", HueEnd: "5B", ChromaBegin: "0", ChromaEnd: "3", ValueBegin: "0", ValueEnd: "INF"},
		{Region: 3, HueBegin: "5Y", HueEnd: "5B", ChromaBegin: "3", ChromaEnd: "INF", ValueBegin: "0", ValueEnd: "INF"},
		{Region: 4, HueBegin: "5B", HueEnd: "5R", ChromaBegin: "0", ChromaEnd: "INF", ValueBegin: "0", ValueEnd: "5"},
		{Region: 4, HueBegin: "5B", HueEnd: "5R", ChromaBegin: "0", ChromaEnd: "INF", ValueBegin: "5", ValueEnd: "INF"},
	}
}

func TestValidate_CompleteTiling(t *testing.T) {
	blocks, err := Validate(testAxes(t), tiling())
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	want := []Block{
		{Region: 1, Hue: IndexRange{0, 1}, Chroma: IndexRange{0, 2}, Value: IndexRange{0, 2}},
		{Region: 2, Hue: IndexRange{1, 3}, Chroma: IndexRange{0, 1}, Value: IndexRange{0, 2}},
		{Region: 3, Hue: IndexRange{1, 3}, Chroma: IndexRange{1, 2}, Value: IndexRange{0, 2}},
		{Region: 4, Hue: IndexRange{3, 0}, Chroma: IndexRange{0, 2}, Value: IndexRange{0, 1}},
		{Region: 4, Hue: IndexRange{3, 0}, Chroma: IndexRange{0, 2}, Value: IndexRange{1, 2}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
	if !blocks[3].HueWraps() || blocks[0].HueWraps() {
		t.Error("HueWraps: only region 4 blocks should wrap")
	}
}

func TestValidate_Overlap(t *testing.T) {
	decls := append(tiling(), Declaration{
		Region: 5, HueBegin: "5R", HueEnd: "5Y", ChromaBegin: "0", ChromaEnd: "3", ValueBegin: "0", ValueEnd: "5",
	})

	_, err := Validate(testAxes(t), decls)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected overlap error, got %v", err)
	}

	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OverlapError, got %T", err)
	}
	if oe.Existing != 1 || oe.Incoming != 5 {
		t.Errorf("overlap ids: got existing=%d incoming=%d, want 1 and 5", oe.Existing, oe.Incoming)
	}
	wantCoord := Coord{HueLabel: "5R", ChromaLabel: "0", ValueLabel: "0"}
	if diff := cmp.Diff(wantCoord, oe.Coord); diff != "" {
		t.Errorf("overlap coord mismatch (-want +got):\n%s", diff)
	}
	if got := oe.Error(); got != "trying to place color 5 over 1 at h=5R c=0 v=0" {
		t.Errorf("Error(): got %q", got)
	}
}

func TestValidate_OverlapAcrossWrap(t *testing.T) {
	// 5P-5Y wraps and covers hue cells 4 and 0, both already claimed.
	decls := append(tiling(), Declaration{
		Region: 6, HueBegin: "5P", HueEnd: "5Y", ChromaBegin: "3", ChromaEnd: "INF", ValueBegin: "5", ValueEnd: "INF",
	})

	_, err := Validate(testAxes(t), decls)
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OverlapError, got %v", err)
	}
	if oe.Existing != 4 || oe.Coord.Hue != 4 {
		t.Errorf("got existing=%d at hue %d, want region 4 at hue 4", oe.Existing, oe.Coord.Hue)
	}
}

func TestValidate_Gap(t *testing.T) {
	decls := tiling()
	decls = append(decls[:1], decls[2:]...) // drop region 2

	_, err := Validate(testAxes(t), decls)
	var ge *GapError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *GapError, got %v", err)
	}
	want := Coord{Hue: 1, Chroma: 0, Value: 0, HueLabel: "5Y", ChromaLabel: "0", ValueLabel: "0"}
	if diff := cmp.Diff(want, ge.Coord); diff != "" {
		t.Errorf("gap coord mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(err, ErrGap) {
		t.Error("GapError should match ErrGap")
	}
}

func TestValidate_EmptyRangesAreGaps(t *testing.T) {
	tests := []struct {
		name   string
		modify func(d *Declaration)
	}{
		{"chroma begin equals end", func(d *Declaration) { d.ChromaEnd = d.ChromaBegin }},
		{"value begin equals end", func(d *Declaration) { d.ValueEnd = d.ValueBegin }},
		{"hue begin equals end", func(d *Declaration) { d.HueEnd = d.HueBegin }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := tiling()
			tt.modify(&decls[0])
			_, err := Validate(testAxes(t), decls)
			if !errors.Is(err, ErrGap) {
				t.Errorf("expected gap error, got %v", err)
			}
		})
	}
}

func TestValidate_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(d *Declaration)
	}{
		{"unknown hue", func(d *Declaration) { d.HueBegin = "5RP" }},
		{"unknown chroma", func(d *Declaration) { d.ChromaEnd = "7" }},
		{"unknown value", func(d *Declaration) { d.ValueBegin = "-1" }},
		{"zero region", func(d *Declaration) { d.Region = 0 }},
		{"negative region", func(d *Declaration) { d.Region = -3 }},
		{"reversed chroma", func(d *Declaration) { d.ChromaBegin, d.ChromaEnd = "INF", "3" }},
		{"reversed value", func(d *Declaration) { d.ValueBegin, d.ValueEnd = "INF", "0" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := tiling()
			tt.modify(&decls[2])
			_, err := Validate(testAxes(t), decls)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if !errors.Is(err, ErrConfig) {
				t.Error("ConfigError should match ErrConfig")
			}
		})
	}
}

func TestValidate_ReversedRangeAfterTiling(t *testing.T) {
	// A reversed range claims no cells, so it must be rejected on its own
	// even when the space is already tiled.
	decls := append(tiling(), Declaration{
		Region: 1, HueBegin: "5R", HueEnd: "5Y",
		ChromaBegin: "INF", ChromaEnd: "0", ValueBegin: "0", ValueEnd: "INF",
	})

	blocks, err := Validate(testAxes(t), decls)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
	if blocks != nil {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
}

func TestValidateAll_CollectsEveryProblem(t *testing.T) {
	decls := tiling()
	decls = append(decls[:1], decls[2:]...) // 4 gap cells from region 2
	decls = append(decls, Declaration{
		Region: 5, HueBegin: "5R", HueEnd: "5Y", ChromaBegin: "0", ChromaEnd: "3", ValueBegin: "0", ValueEnd: "INF",
	}) // 2 overlap cells with region 1
	decls = append(decls, Declaration{
		Region: 6, HueBegin: "9R", HueEnd: "5Y", ChromaBegin: "0", ChromaEnd: "3", ValueBegin: "0", ValueEnd: "INF",
	}) // bad label

	blocks, err := ValidateAll(testAxes(t), decls)
	if err == nil {
		t.Fatal("ValidateAll should fail")
	}
	if blocks != nil {
		t.Errorf("expected no blocks on failure, got %d", len(blocks))
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined error, got %T", err)
	}

	var overlaps, gaps, configs int
	for _, e := range joined.Unwrap() {
		switch {
		case errors.Is(e, ErrOverlap):
			overlaps++
		case errors.Is(e, ErrGap):
			gaps++
		case errors.Is(e, ErrConfig):
			configs++
		}
	}
	if overlaps != 2 || gaps != 4 || configs != 1 {
		t.Errorf("got %d overlaps, %d gaps, %d config errors; want 2, 4, 1", overlaps, gaps, configs)
	}
}

func TestValidateAll_Success(t *testing.T) {
	blocks, err := ValidateAll(testAxes(t), tiling())
	if err != nil {
		t.Fatalf("ValidateAll failed: %v", err)
	}
	if len(blocks) != len(tiling()) {
		t.Errorf("got %d blocks, want %d", len(blocks), len(tiling()))
	}
}

func TestTable_Index(t *testing.T) {
	tb := newTable(testAxes(t))

	if len(tb.cells) != 5*2*2 {
		t.Fatalf("table size: got %d, want 20", len(tb.cells))
	}

	seen := make(map[int]bool)
	for h := 0; h < 5; h++ {
		for c := 0; c < 2; c++ {
			for v := 0; v < 2; v++ {
				idx, ok := tb.index(h, c, v)
				if !ok {
					t.Fatalf("index(%d,%d,%d) rejected", h, c, v)
				}
				if seen[idx] {
					t.Fatalf("index(%d,%d,%d) = %d reused", h, c, v, idx)
				}
				seen[idx] = true
			}
		}
	}

	outside := [][3]int{{5, 0, 0}, {0, 2, 0}, {0, 0, 2}, {-1, 0, 0}}
	for _, o := range outside {
		if _, ok := tb.index(o[0], o[1], o[2]); ok {
			t.Errorf("index(%d,%d,%d) should be rejected", o[0], o[1], o[2])
		}
	}
}
