package iscc

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ironsheep/iscc-nbs-tools/internal/centroid"
	"github.com/ironsheep/iscc-nbs-tools/internal/document"
	"github.com/ironsheep/iscc-nbs-tools/internal/munsell"
	"github.com/ironsheep/iscc-nbs-tools/internal/names"
	"github.com/ironsheep/iscc-nbs-tools/internal/partition"
)

const sample = "../../testdata/mini.xml"

func TestOpen(t *testing.T) {
	s, err := Open(sample, Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if len(s.Blocks) != 5 {
		t.Errorf("blocks: got %d, want 5", len(s.Blocks))
	}
	if len(s.Regions) != 4 {
		t.Fatalf("regions: got %d, want 4", len(s.Regions))
	}

	r, ok := s.Region(3)
	if !ok || r.ID != 3 {
		t.Errorf("Region(3): got %+v, %v", r, ok)
	}
	if _, ok := s.Region(0); ok {
		t.Error("Region(0) should not exist")
	}
	if _, ok := s.Region(5); ok {
		t.Error("Region(5) should not exist")
	}

	e, ok := s.Name(3)
	if !ok || e.Name != "vivid green" {
		t.Errorf("Name(3): got %+v, %v", e, ok)
	}
}

func TestSystem_Classify(t *testing.T) {
	s, err := Open(sample, Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	tests := []struct {
		color string
		want  int
	}{
		{"5YR 4/6", 1},
		{"5G 4/2", 2},
		{"5G 4/12", 3},
		{"5P 2/4", 4},
		{"5P 8/20", 4},
		{"5RP 9/1", 4},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			c, err := munsell.ParseColor(tt.color)
			if err != nil {
				t.Fatalf("ParseColor failed: %v", err)
			}
			r, ok := s.Classify(c)
			if !ok {
				t.Fatalf("Classify(%s) found nothing", tt.color)
			}
			if r.ID != tt.want {
				t.Errorf("Classify(%s): got region %d, want %d", tt.color, r.ID, tt.want)
			}
		})
	}
}

func TestSystem_Classify_OutsideSpace(t *testing.T) {
	s, err := Open(sample, Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := s.Classify(munsell.NewColor(munsell.NewHue(10), 4, -1)); ok {
		t.Error("negative chroma should not classify")
	}
}

func TestBuild_Errors(t *testing.T) {
	const axes = `<hues><h id="5R"/><h id="5Y"/></hues>
		<chromas><c>0</c><c>INF</c></chromas>
		<values><v>0</v><v>INF</v></values>`

	tests := []struct {
		name   string
		xml    string
		target error
	}{
		{
			"duplicate names",
			`<d>` + axes + `<names><n color="1" name="a" abbr="a"/><n color="2" name="a" abbr="b"/></names></d>`,
			names.ErrNames,
		},
		{
			"unsorted axis",
			`<d><hues><h id="5R"/></hues><chromas><c>3</c><c>0</c></chromas><values><v>0</v><v>INF</v></values></d>`,
			partition.ErrConfig,
		},
		{
			"gap",
			`<d>` + axes + `<ranges><hue-range begin="5R" end="5Y"><range color="1" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range></ranges></d>`,
			partition.ErrGap,
		},
		{
			"overlap",
			`<d>` + axes + `<ranges>
				<hue-range begin="5R" end="5Y"><range color="1" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
				<hue-range begin="5Y" end="5R"><range color="2" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
				<hue-range begin="5R" end="5Y"><range color="3" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
			</ranges></d>`,
			partition.ErrOverlap,
		},
		{
			"unreferenced id",
			`<d>` + axes + `<ranges>
				<hue-range begin="5R" end="5Y"><range color="1" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
				<hue-range begin="5Y" end="5R"><range color="3" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
			</ranges></d>`,
			centroid.ErrDegenerateRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.Parse(strings.NewReader(tt.xml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			_, err = Build(doc, Options{})
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestBuild_CollectAll(t *testing.T) {
	doc, err := document.Parse(strings.NewReader(`<d>
		<hues><h id="5R"/><h id="5Y"/></hues>
		<chromas><c>0</c><c>INF</c></chromas>
		<values><v>0</v><v>5</v><v>INF</v></values>
		<ranges>
			<hue-range begin="5R" end="5Y"><range color="1" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
			<hue-range begin="5R" end="5Y"><range color="2" chroma-begin="0" chroma-end="INF" value-begin="0" value-end="INF"/></hue-range>
		</ranges></d>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, err = Build(doc, Options{CollectAll: true})
	if !errors.Is(err, partition.ErrOverlap) || !errors.Is(err, partition.ErrGap) {
		t.Errorf("expected both overlaps and gaps, got %v", err)
	}
}

func TestCache(t *testing.T) {
	c := NewCache(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Load(sample); err != nil {
				t.Errorf("Load failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("Len: got %d, want 1", c.Len())
	}

	first, _ := c.Load(sample)
	second, _ := c.Load(sample)
	if first != second {
		t.Error("second Load should return the cached system")
	}

	c.Evict(sample)
	if c.Len() != 0 {
		t.Errorf("Len after Evict: got %d, want 0", c.Len())
	}

	if _, err := c.Load("testdata/missing.xml"); err == nil {
		t.Error("Load of a missing file should fail")
	}
	if c.Len() != 0 {
		t.Errorf("failed loads should not be cached, Len = %d", c.Len())
	}

	_, _ = c.Load(sample)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", c.Len())
	}
}
