package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoopReaderDecodesLeafAcrossSteps(t *testing.T) {
	leaf := newUintLeaf(IDTrackNumber, 99)
	var buf bytes.Buffer
	require.NoError(t, WriteTo(NewBlockingWriter(&buf), leaf))

	underlying := NewBlockingReader(bytes.NewReader(buf.Bytes()))

	var result UintLeaf
	var stepCount int
	task := StartTask(func(y *Yielder) error {
		r := NewCoopReader(underlying, y)
		return ReadFrom(r, &result)
	})

	sched := &Scheduler{}
	sched.Add(task)
	for {
		finished, err := task.Step()
		stepCount++
		require.NoError(t, err)
		if finished {
			break
		}
		if stepCount > 100 {
			t.Fatal("task never finished")
		}
	}

	require.Equal(t, uint64(99), result.Value)
	require.Greater(t, stepCount, 1, "decode should suspend at least once")
}

func TestSchedulerRunAllCollectsFirstError(t *testing.T) {
	t1 := StartTask(func(y *Yielder) error {
		y.Yield()
		return nil
	})
	t2 := StartTask(func(y *Yielder) error {
		y.Yield()
		return ErrBodySizeUnknown
	})

	sched := &Scheduler{}
	sched.Add(t1)
	sched.Add(t2)
	err := sched.RunAll()
	require.ErrorIs(t, err, ErrBodySizeUnknown)
}
