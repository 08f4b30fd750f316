package gl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadLeavesUnresolvedSymbolsNil(t *testing.T) {
	var asked []string
	f := Load(func(name string) uintptr {
		asked = append(asked, name)
		return 0
	})
	require.False(t, f.Complete())
	require.Nil(t, f.Clear)
	require.Nil(t, f.GetString)
	require.Contains(t, asked, "glClear")
	require.Contains(t, asked, "glGetString")
	require.Contains(t, asked, "glViewport")
	require.Contains(t, asked, "glScissor")
	require.Contains(t, asked, "glGetError")
}

func TestComplete(t *testing.T) {
	f := &Functions{
		Clear:        func(uint32) {},
		ClearColor:   func(float32, float32, float32, float32) {},
		ClearDepth:   func(float64) {},
		ClearStencil: func(int32) {},
		Viewport:     func(int32, int32, int32, int32) {},
		Scissor:      func(int32, int32, int32, int32) {},
		Enable:       func(uint32) {},
		Disable:      func(uint32) {},
		Flush:        func() {},
		GetError:     func() uint32 { return NoError },
		GetString:    func(uint32) *byte { return nil },
	}
	require.True(t, f.Complete())

	f.GetString = nil
	require.False(t, f.Complete())
}

func TestString(t *testing.T) {
	require.Equal(t, "", String(nil))

	b := append([]byte("2.1 Mesa"), 0)
	require.Equal(t, "2.1 Mesa", String(&b[0]))

	empty := []byte{0}
	require.Equal(t, "", String(&empty[0]))
}
