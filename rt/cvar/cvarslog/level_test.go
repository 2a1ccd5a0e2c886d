package cvarslog

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

func TestLevelVarFollowsStrings(t *testing.T) {
	v := cvar.New()
	v.SetString("info")
	lv, _ := LevelVar(v, slog.LevelWarn)
	require.Equal(t, slog.LevelInfo, lv.Level())

	v.SetString("ERROR")
	require.Equal(t, slog.LevelError, lv.Level())

	v.SetString("warning")
	require.Equal(t, slog.LevelWarn, lv.Level())

	v.SetString("err")
	require.Equal(t, slog.LevelError, lv.Level())

	v.SetString("info+2")
	require.Equal(t, slog.LevelInfo+2, lv.Level())
}

func TestLevelVarInvalidKeepsLevel(t *testing.T) {
	v := cvar.New()
	v.SetString("loud")
	lv, _ := LevelVar(v, slog.LevelWarn)
	require.Equal(t, slog.LevelWarn, lv.Level(), "default used for invalid initial value")

	v.SetString("debug")
	require.Equal(t, slog.LevelDebug, lv.Level())

	v.SetString("")
	require.Equal(t, slog.LevelDebug, lv.Level())
}

func TestLevelVarNumeric(t *testing.T) {
	v := cvar.New()
	lv, _ := LevelVar(v, slog.LevelWarn)
	require.Equal(t, slog.LevelInfo, lv.Level(), "int 0 is slog.LevelInfo")

	v.SetInt(8)
	require.Equal(t, slog.LevelError, lv.Level())

	v.SetDouble(-4.5)
	require.Equal(t, slog.LevelDebug, lv.Level())
}

func TestLevelVarUnsubscribe(t *testing.T) {
	v := cvar.New()
	lv, sub := LevelVar(v, slog.LevelInfo)
	sub.Unsubscribe()

	v.SetString("error")
	require.Equal(t, slog.LevelInfo, lv.Level())
	require.Equal(t, 0, v.Observers())
}

func TestLevelVarNil(t *testing.T) {
	lv, sub := LevelVar(nil, slog.LevelError)
	require.Equal(t, slog.LevelError, lv.Level())
	require.False(t, sub.Active())
}
