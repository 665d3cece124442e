package lexicon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bias_rules.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	lex := Load(filepath.Join(t.TempDir(), "does_not_exist.csv"), zap.NewNop())

	assert.True(t, lex.Empty())
	assert.Empty(t, lex.Rules)
	assert.Empty(t, lex.Rejected)
}

func TestLoadValidTable(t *testing.T) {
	path := writeLexicon(t, `phrase|category|context_rule|tip
positive without evidence|Vagueness|positive_without_evidence|Add an example.
team player|Vagueness|always|Name the collaboration.
lacks? confidence|Personality Focus|pattern|Name the skill gap.
emotional|Gendered Language|if_gender_female|Describe the behavior.
`)
	lex := Load(path, zap.NewNop())

	require.Len(t, lex.Rules, 4)
	assert.Empty(t, lex.Rejected)

	marker, ok := lex.Marker()
	require.True(t, ok)
	assert.Equal(t, "Vagueness", marker.Category)

	assert.Equal(t, "team player", lex.Rules[1].Phrase)
	assert.Equal(t, ContextAlways, lex.Rules[1].Context)
	assert.Nil(t, lex.Rules[1].Pattern)

	require.NotNil(t, lex.Rules[2].Pattern)
	assert.Equal(t, ContextPattern, lex.Rules[2].Context)
	assert.True(t, lex.Rules[2].Pattern.MatchString("She LACKS confidence"))

	assert.Equal(t, ContextIfGenderFemale, lex.Rules[3].Context)
}

func TestLoadInvalidPatternRejected(t *testing.T) {
	path := writeLexicon(t, `phrase|category|context_rule|tip
lacks( confidence|Personality Focus|pattern|Broken regex.
team player|Vagueness|always|Name the collaboration.
`)
	lex := Load(path, zap.NewNop())

	require.Len(t, lex.Rules, 1)
	assert.Equal(t, "team player", lex.Rules[0].Phrase)
	require.Len(t, lex.Rejected, 1)
	assert.Equal(t, 1, lex.Rejected[0].Line)
	assert.NotEmpty(t, lex.Rejected[0].Reason)
}

func TestLoadQuotedHeaderFallsBackToManualSplit(t *testing.T) {
	// A fully quoted header collapses the primary parse into one column.
	path := writeLexicon(t, `"phrase|category|context_rule|tip"
team player|Vagueness|always|Name the collaboration.
hard worker|Vagueness|always|Quantify the effort.
`)
	lex := Load(path, zap.NewNop())

	require.Len(t, lex.Rules, 2)
	assert.Equal(t, "team player", lex.Rules[0].Phrase)
	assert.Equal(t, "hard worker", lex.Rules[1].Phrase)
}

func TestLoadWrongHeaderColumnCount(t *testing.T) {
	path := writeLexicon(t, `phrase|category|tip
team player|Vagueness|Name the collaboration.
`)
	lex := Load(path, zap.NewNop())

	assert.True(t, lex.Empty())
}

func TestLoadNormalizesShortRowsAndSkipsEmptyPhrases(t *testing.T) {
	path := writeLexicon(t, `phrase|category|context_rule|tip
team player|Vagueness
   |Vagueness|always|Phrase is blank after trimming.

hard worker|Vagueness|ALWAYS|Quantify the effort.
`)
	lex := Load(path, zap.NewNop())

	require.Len(t, lex.Rules, 2)
	assert.Equal(t, "team player", lex.Rules[0].Phrase)
	assert.Equal(t, ContextAlways, lex.Rules[0].Context)
	assert.Equal(t, "", lex.Rules[0].Tip)
	assert.Equal(t, ContextAlways, lex.Rules[1].Context)
}

func TestCacheReloadsOnModification(t *testing.T) {
	path := writeLexicon(t, `phrase|category|context_rule|tip
team player|Vagueness|always|Name the collaboration.
`)
	cache := NewCache(zap.NewNop())

	first := cache.Get(path)
	require.Len(t, first.Rules, 1)
	assert.Same(t, first, cache.Get(path), "unchanged file should hit the cache")

	require.NoError(t, os.WriteFile(path, []byte(`phrase|category|context_rule|tip
team player|Vagueness|always|Name the collaboration.
hard worker|Vagueness|always|Quantify the effort.
`), 0o644))
	// Force a visible mtime change regardless of filesystem granularity.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second := cache.Get(path)
	require.Len(t, second.Rules, 2)
}

func TestCacheMissingFileNotCached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bias_rules.csv")
	cache := NewCache(zap.NewNop())

	assert.True(t, cache.Get(path).Empty())

	require.NoError(t, os.WriteFile(path, []byte(`phrase|category|context_rule|tip
team player|Vagueness|always|Name the collaboration.
`), 0o644))
	assert.Len(t, cache.Get(path).Rules, 1, "table should recover once the file appears")
}

func TestCacheInvalidate(t *testing.T) {
	path := writeLexicon(t, `phrase|category|context_rule|tip
team player|Vagueness|always|Name the collaboration.
`)
	cache := NewCache(zap.NewNop())
	first := cache.Get(path)

	cache.Invalidate(path)
	second := cache.Get(path)
	assert.NotSame(t, first, second)
	assert.Len(t, second.Rules, 1)
}
