package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/geodash/obj"
)

func TestParse(t *testing.T) {
	src := `# header comment
1,500,800,100,20

2;600;918;50;60;false
3 | 700 | 650 | 60
9,1,2,3
2	900	162	50	60	true
1.0,10,20,30,40
`
	lay, err := Parse("test.lvl", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantBlocks := []obj.Block{obj.NewBlock(500, 800, 100, 20), obj.NewBlock(10, 20, 30, 40)}
	wantSpikes := []obj.Spike{obj.NewSpike(600, 918, 50, 60, false), obj.NewSpike(900, 162, 50, 60, true)}
	wantOrbs := []obj.Orb{obj.NewOrb(700, 650, 60)}

	if len(lay.Blocks) != len(wantBlocks) || len(lay.Spikes) != len(wantSpikes) || len(lay.Orbs) != len(wantOrbs) {
		t.Fatalf("unexpected counts: %d blocks, %d spikes, %d orbs", len(lay.Blocks), len(lay.Spikes), len(lay.Orbs))
	}
	for i := range wantBlocks {
		if lay.Blocks[i] != wantBlocks[i] {
			t.Fatalf("block %d: expected %+v, got %+v", i, wantBlocks[i], lay.Blocks[i])
		}
	}
	for i := range wantSpikes {
		if lay.Spikes[i] != wantSpikes[i] {
			t.Fatalf("spike %d: expected %+v, got %+v", i, wantSpikes[i], lay.Spikes[i])
		}
	}
	if lay.Orbs[0] != wantOrbs[0] {
		t.Fatalf("orb: expected %+v, got %+v", wantOrbs[0], lay.Orbs[0])
	}
	if lay.Len() != 5 {
		t.Fatalf("expected 5 obstacles, got %d", lay.Len())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line string
	}{
		{"non_numeric_field", "1,500,abc,100,20", "bad.lvl:1"},
		{"non_numeric_tag", "block,1,2,3,4", "bad.lvl:1"},
		{"too_few_fields", "2,600,918,50,60", "bad.lvl:1"},
		{"too_many_fields", "3,700,650,60,1", "bad.lvl:1"},
		{"bad_flip", "1,1,1,1,1\n2,600,918,50,60,maybe", "bad.lvl:2"},
		{"not_a_number", "3,NaN,650,60", "bad.lvl:1"},
		{"separators_only", "1,500,800,100,20\n,,,\n", "bad.lvl:2"},
		{"pipes_only", "| |", "bad.lvl:1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lay, err := Parse("bad.lvl", strings.NewReader(c.src))
			if err == nil {
				t.Fatalf("expected error, got layout %+v", lay)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if !strings.Contains(err.Error(), c.line) {
				t.Fatalf("expected %q in error, got %v", c.line, err)
			}
		})
	}
}

func TestRunScript(t *testing.T) {
	src := []byte(`
for i := 0; i < 3; i++ {
	level.spike(1000 + i * 100, level.ground, 50, 60)
}
level.spike(2000, level.ceiling, 50, 60, true)
level.block(1500, level.ground - 60, 200, 60)
level.orb(1800, 700, 60)
`)
	lay, err := RunScript("gen.tengo", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lay.Spikes) != 4 || len(lay.Blocks) != 1 || len(lay.Orbs) != 1 {
		t.Fatalf("unexpected counts: %d spikes, %d blocks, %d orbs", len(lay.Spikes), len(lay.Blocks), len(lay.Orbs))
	}
	if lay.Spikes[1] != obj.NewSpike(1100, 918, 50, 60, false) {
		t.Fatalf("unexpected spike %+v", lay.Spikes[1])
	}
	if !lay.Spikes[3].Flip || lay.Spikes[3].Pos.Y != 162 {
		t.Fatalf("expected ceiling spike, got %+v", lay.Spikes[3])
	}
	if lay.Blocks[0] != obj.NewBlock(1500, 858, 200, 60) {
		t.Fatalf("unexpected block %+v", lay.Blocks[0])
	}
}

func TestRunScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `level.block(`},
		{"wrong_arity", `level.block(1, 2, 3)`},
		{"not_a_number", `level.orb(1, "x", 3)`},
		{"undefined_function", `level.wall(1, 2, 3, 4)`},
		{"flip_not_bool", `level.spike(1, 2, 3, 4, "false")`},
		{"flip_int", `level.spike(1, 2, 3, 4, 0)`},
		{"infinite", `m := import("math"); level.orb(1, m.inf(1), 3)`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := RunScript("bad.tengo", []byte(c.src)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestSourceLoadEmbedded(t *testing.T) {
	src := Source{FS: LevelsFS}

	for _, name := range []string{"level_1", "level_1.lvl", "levels/level_1", "level_2", "level_flip"} {
		t.Run(name, func(t *testing.T) {
			lay, err := src.Load(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lay.Len() == 0 {
				t.Fatalf("expected obstacles")
			}
		})
	}
}

func TestSourceDiskOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level_1.lvl"), []byte("3,100,100,10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := Source{Dir: dir, FS: fstest.MapFS{
		"level_1.lvl": {Data: []byte("1,1,1,1,1\n2,1,1,1,1,false\n")},
		"extra.tengo": {Data: []byte("level.orb(1, 2, 3)\n")},
	}}

	lay, err := src.Load("level_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lay.Orbs) != 1 || len(lay.Blocks) != 0 {
		t.Fatalf("disk file should win, got %+v", lay)
	}

	lay, err = src.Load("extra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lay.Orbs) != 1 {
		t.Fatalf("expected embedded script level, got %+v", lay)
	}

	if _, err := src.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := src.Load("  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank name, got %v", err)
	}

	names := src.Names()
	if strings.Join(names, ",") != "extra,level_1" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "level_9.lvl")
	if err := os.WriteFile(target, []byte("1,1,1,1,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for level change")
	}
}
