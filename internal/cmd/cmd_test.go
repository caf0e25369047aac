package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterclock "github.com/renato0307/hiit/internal/adapters/clock"
	adapterstorage "github.com/renato0307/hiit/internal/adapters/storage"
	"github.com/renato0307/hiit/internal/config"
	"github.com/renato0307/hiit/internal/domain"
)

const circuitYAML = `
workouts:
  - id: circuit
    name: Circuit
    prepare_sec: 10
    exercises:
      - name: Squats
        sets: 2
        work_sec: 30
        rest_sec: 15
        last_rest: none
`

// runCLI parses and runs args in-process with an isolated HIIT_HOME,
// returning what the command printed on stdout
func runCLI(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HIIT_HOME", home)

	var cli CLI
	cli.SetSettings(&config.Settings{})
	parser, err := kong.New(&cli,
		kong.Name("hiit"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w

	captured := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		captured <- buf.String()
	}()

	kctx, err := parser.Parse(args)
	if err == nil {
		err = kctx.Run()
	}
	cli.Close()

	w.Close()
	os.Stdout = stdout
	return <-captured, err
}

func importCircuit(t *testing.T, home string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(circuitYAML), 0o644))

	out, err := runCLI(t, home, "workouts", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported Circuit (circuit)")
}

func TestWorkouts_ImportListShow(t *testing.T) {
	home := t.TempDir()
	importCircuit(t, home)

	out, err := runCLI(t, home, "workouts", "list", "--format", "json")
	require.NoError(t, err)

	var summaries []workoutSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
		if s.ID == "circuit" {
			assert.Equal(t, "preset", s.Source)
			assert.Equal(t, 10+30+15+30, s.TotalSec)
		}
	}
	assert.ElementsMatch(t, []string{"circuit", domain.QuickStartID}, ids)

	out, err = runCLI(t, home, "workouts", "show", "circuit")
	require.NoError(t, err)
	assert.Contains(t, out, "Workout: Circuit")
	assert.Contains(t, out, "Duration: 01:25")
}

func TestWorkouts_PinAndDelete(t *testing.T) {
	home := t.TempDir()
	importCircuit(t, home)

	out, err := runCLI(t, home, "workouts", "pin", "circuit")
	require.NoError(t, err)
	assert.Contains(t, out, "Pinned circuit")

	_, err = runCLI(t, home, "workouts", "del", "--force", "circuit")
	require.NoError(t, err)

	_, err = runCLI(t, home, "workouts", "show", "circuit")
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestWorkouts_ExportWritesYAML(t *testing.T) {
	home := t.TempDir()
	importCircuit(t, home)
	dest := filepath.Join(t.TempDir(), "out", "export.yaml")

	out, err := runCLI(t, home, "workouts", "export", "--id", "circuit", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 workouts")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Circuit")
}

func TestPlan_JSON(t *testing.T) {
	home := t.TempDir()
	importCircuit(t, home)

	out, err := runCLI(t, home, "plan", "circuit", "--format", "json")
	require.NoError(t, err)

	var segments []segmentView
	require.NoError(t, json.Unmarshal([]byte(out), &segments))
	require.Len(t, segments, 5)
	assert.Equal(t, domain.PhasePrepare, segments[0].Kind)
	assert.Equal(t, 85, segments[0].RemainingAt)
	assert.Equal(t, "Squats 2/2", segments[3].Label)
	assert.Equal(t, domain.PhaseDone, segments[4].Kind)
}

func TestStatusAndStop(t *testing.T) {
	home := t.TempDir()
	importCircuit(t, home)

	out, err := runCLI(t, home, "status")
	require.NoError(t, err)
	assert.Equal(t, "No active workout\n", out)

	repo, err := adapterstorage.NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	now := adapterclock.New().NowMs()
	snapshot := domain.Seek(domain.NewRuntimeSnapshot("circuit", now), 1, now)
	snapshot = domain.Pause(snapshot, now)
	require.NoError(t, repo.UpsertSession(context.Background(), snapshot))
	require.NoError(t, repo.Close())

	out, err = runCLI(t, home, "status")
	require.NoError(t, err)
	assert.Equal(t, "Squats: 00:30 (set 1/2) (paused)\n", out)

	out, err = runCLI(t, home, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped Circuit")

	out, err = runCLI(t, home, "status")
	require.NoError(t, err)
	assert.Equal(t, "No active workout\n", out)
}

func TestRun_WithoutSessionFails(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "--no-sounds", "run", "--headless")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Contains(t, err.Error(), "no active session")
}

func TestKeptSessionNotice(t *testing.T) {
	running := domain.RenderState{IsActive: true, WorkoutName: "Circuit"}

	assert.Equal(t, "Circuit is still running. Use 'hiit run' to resume or 'hiit stop' to end it.",
		keptSessionNotice(true, running))
	assert.Empty(t, keptSessionNotice(false, running))
	assert.Empty(t, keptSessionNotice(true, domain.TerminalRenderState(running)))
	assert.Empty(t, keptSessionNotice(true, domain.RenderState{IsActive: true, IsFinished: true}))
}

func TestCLI_SettingsPrecedence(t *testing.T) {
	volume := 0.3
	disabled := false
	cli := CLI{Volume: config.DefaultVolume, MaxLogFiles: 1000}
	cli.SetSettings(&config.Settings{Volume: &volume, SoundsEnabled: &disabled})

	cli.applySettings()

	cues := cli.CueConfig()
	assert.Equal(t, 0.3, cues.Volume)
	assert.False(t, cues.SoundsEnabled)

	t.Setenv("HIIT_VOLUME", "0.8")
	cli = CLI{Volume: config.DefaultVolume, MaxLogFiles: 1000}
	cli.SetSettings(&config.Settings{Volume: &volume})
	cli.applySettings()
	assert.Equal(t, config.DefaultVolume, cli.Volume)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "No active workout", describe(domain.IdleRenderState()))
	assert.Equal(t, "Workout complete", describe(domain.RenderState{IsActive: true, IsFinished: true}))
	assert.Equal(t, "REST: 00:09", describe(domain.RenderState{IsActive: true, PhaseLabel: "REST", PhaseRemaining: 9}))
}
