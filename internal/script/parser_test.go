package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{`cd "my dir"`, []string{"cd", "my dir"}},
		{`a\ b c`, []string{"a b", "c"}},
		{`say "hi`, []string{"say", `"hi`}},
		{`echo foo\`, []string{"echo", `foo\`}},
		{`echo "a \"quoted\" word"`, []string{"echo", `a "quoted" word`}},
		{`  spaced    out  `, []string{"spaced", "out"}},
		{`echo ""`, []string{"echo", ""}},
		{``, []string{}},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Tokenize(c.line), "line %q", c.line)
	}
}

func TestParseEndToEnd(t *testing.T) {
	actions, err := Parse("cd /tmp\n- echo hi\n# echo silent\necho visible")
	require.NoError(t, err)

	assert.Equal(t, []Action{
		ChangeDir{Path: "/tmp"},
		RunCommandVisibleOutputOnly{Args: []string{"echo", "hi"}},
		RunCommandQuiet{Args: []string{"echo", "silent"}},
		RunCommand{Args: []string{"echo", "visible"}},
	}, actions)
}

func TestParseSigils(t *testing.T) {
	text := `
ls -la

#cd quiet
-cd other
cd "two words"
+ out.txt in.txt
+cd src
#cd
`
	actions, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []Action{
		RunCommand{Args: []string{"ls", "-la"}},
		ChangeDirQuiet{Path: "quiet"},
		ChangeDirQuiet{Path: "other"},
		ChangeDir{Path: "two words"},
		RunEditor{Dest: "out.txt", Src: "in.txt"},
		RunEditor{Dest: "cd", Src: "src"},
		RunCommandQuiet{Args: []string{"cd"}},
	}, actions)
}

func TestParseCountsNonBlankLines(t *testing.T) {
	text := "echo 1\r\n\r\n  \n#echo 2\n-echo 3\n"
	actions, err := Parse(text)
	require.NoError(t, err)
	assert.Len(t, actions, 3)
}

func TestParseEditorArity(t *testing.T) {
	for _, line := range []string{"+ out.txt", "+ a b c", "+out.txt in.txt extra"} {
		actions, err := Parse("echo before\n" + line + "\necho after")
		assert.Nil(t, actions)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEditorArity))

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, 2, perr.Line)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.script")
	require.NoError(t, os.WriteFile(path, []byte("cd /tmp\n+ a.go b.go\n"), 0644))

	actions, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Action{ChangeDir{Path: "/tmp"}, RunEditor{Dest: "a.go", Src: "b.go"}}, actions)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, `cd "/tmp"`, ChangeDir{Path: "/tmp"}.String())
	assert.Equal(t, `#cd "x"`, ChangeDirQuiet{Path: "x"}.String())
	assert.Equal(t, `"echo" "a b"`, RunCommand{Args: []string{"echo", "a b"}}.String())
	assert.Equal(t, `#"true"`, RunCommandQuiet{Args: []string{"true"}}.String())
	assert.Equal(t, `-"ls"`, RunCommandVisibleOutputOnly{Args: []string{"ls"}}.String())
	assert.Equal(t, `+ "dst.go" "src.go"`, RunEditor{Dest: "dst.go", Src: "src.go"}.String())
}
