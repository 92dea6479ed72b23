package patch

import (
	"encoding/json"
	goerrors "errors"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/matryer/is"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

func TestDiffAliasesEmitsPositionalOps(t *testing.T) {
	is := is.New(t)

	from := types.Aliases{
		"en": {"Foo", "Bar", "Baz"},
		"de": {"Foobar"},
	}
	to := types.Aliases{
		"en": {"Foo", "Boo"},
		"de": {"Foobar", "Foobaz"},
	}

	p, err := DiffAliases(from, to)
	is.NoErr(err)
	is.Equal(p.Entries(), []Entry{
		NewEntry(OpAdd, "/de/1", "Foobaz"),
		NewEntry(OpReplace, "/en/1", "Boo"),
		NewEntry(OpRemove, "/en/2", nil),
	})
}

func TestDiffAliasesReplaysToTarget(t *testing.T) {
	is := is.New(t)

	from := types.Aliases{
		"en": {"Foo", "Bar", "Baz"},
		"de": {"Foobar"},
	}
	to := types.Aliases{
		"en": {"Foo", "Boo"},
		"de": {"Foobar", "Foobaz"},
	}

	p, err := DiffAliases(from, to)
	is.NoErr(err)
	is.Equal(applyEntries(is, from, p.Entries()), canonical(is, to))
}

func TestEmptyDiffForAllSubResources(t *testing.T) {
	is := is.New(t)

	labels := types.Labels{"en": "Douglas Adams"}
	descriptions := types.Descriptions{"en": "English writer"}
	aliases := types.Aliases{"en": {"Douglas Noel Adams"}}
	sitelinks := types.Sitelinks{"enwiki": types.NewSitelink("Douglas Adams")}
	statements := types.NewStatements()
	st := types.NewStringStatement("P800", "The Hitchhiker's Guide to the Galaxy")
	st.ID = "Q42$AAAA"
	statements.Insert(st)

	lp, err := DiffLabels(labels, labels)
	is.NoErr(err)
	is.True(lp.IsEmpty())

	dp, err := DiffDescriptions(descriptions, descriptions)
	is.NoErr(err)
	is.True(dp.IsEmpty())

	ap, err := DiffAliases(aliases, aliases)
	is.NoErr(err)
	is.True(ap.IsEmpty())

	sp, err := DiffSitelinks(sitelinks, sitelinks)
	is.NoErr(err)
	is.True(sp.IsEmpty())

	stp, err := DiffStatements(statements, statements)
	is.NoErr(err)
	is.True(stp.IsEmpty())
}

func TestDiffLabels(t *testing.T) {
	is := is.New(t)

	from := types.Labels{"en": "Douglas Adams", "de": "Douglas Adams"}
	to := types.Labels{"en": "Douglas Noel Adams", "fr": "Douglas Adams"}

	p, err := DiffLabels(from, to)
	is.NoErr(err)
	is.Equal(p.Entries(), []Entry{
		NewEntry(OpRemove, "/de", nil),
		NewEntry(OpReplace, "/en", "Douglas Noel Adams"),
		NewEntry(OpAdd, "/fr", "Douglas Adams"),
	})
	is.Equal(applyEntries(is, from, p.Entries()), canonical(is, to))
}

func TestDiffSitelinksPartialEdit(t *testing.T) {
	is := is.New(t)

	from := types.Sitelinks{
		"enwiki": types.NewSitelink("Douglas Adams"),
		"dewiki": types.NewSitelink("Douglas Adams"),
	}
	to := types.Sitelinks{
		"enwiki": types.NewSitelink("Douglas Noel Adams"),
		"frwiki": types.NewSitelink("Douglas Adams"),
	}

	p, err := DiffSitelinks(from, to)
	is.NoErr(err)
	is.Equal(p.Entries(), []Entry{
		NewEntry(OpRemove, "/dewiki", nil),
		NewEntry(OpReplace, "/enwiki/title", "Douglas Noel Adams"),
		NewEntry(OpAdd, "/frwiki", map[string]any{"title": "Douglas Adams", "badges": []any{}}),
	})
	is.Equal(applyEntries(is, from, p.Entries()), canonical(is, to))
}

func TestDiffStatementsIgnoresCollectionOrder(t *testing.T) {
	is := is.New(t)

	first := types.NewStringStatement("P31", "human")
	first.ID = "Q42$0001"
	second := types.NewStringStatement("P800", "novel")
	second.ID = "Q42$0002"

	from := types.NewStatements()
	from.Insert(first)
	from.Insert(second)

	to := types.NewStatements()
	to.Insert(second)
	to.Insert(first)

	p, err := DiffStatements(from, to)
	is.NoErr(err)
	is.True(p.IsEmpty())
}

func TestDiffStatementsAddAndRemove(t *testing.T) {
	is := is.New(t)

	kept := types.NewStringStatement("P31", "human")
	kept.ID = "Q1"
	removed := types.NewStringStatement("P1", "old")
	removed.ID = "Q2"
	added := types.NewStringStatement("P1", "new")
	added.ID = "Q3"

	from := types.NewStatements()
	from.Insert(kept)
	from.Insert(removed)

	to := types.NewStatements()
	to.Insert(kept)
	to.Insert(added)

	p, err := DiffStatements(from, to)
	is.NoErr(err)
	is.Equal(len(p.Entries()), 2)
	is.Equal(p.Entries()[0], NewEntry(OpRemove, "/statements/Q2", nil))
	is.Equal(p.Entries()[1].Op, OpAdd)
	is.Equal(p.Entries()[1].Path, "/statements/Q3")
}

func TestDiffStatementsModifiesMatchedPairInPlace(t *testing.T) {
	is := is.New(t)

	before := types.NewStringStatement("P31", "human")
	before.ID = "Q42$0001"
	after := before.Clone()
	after.Rank = types.RankPreferred

	from := types.NewStatements()
	from.Insert(before)
	to := types.NewStatements()
	to.Insert(after)

	p, err := DiffStatements(from, to)
	is.NoErr(err)
	is.Equal(p.Entries(), []Entry{
		NewEntry(OpReplace, "/rank", "preferred"),
	})
}

func TestDiffStatementsRejectsTargetWithoutID(t *testing.T) {
	is := is.New(t)

	withID := types.NewStringStatement("P31", "human")
	withID.ID = "Q42$0001"
	withoutID := types.NewStringStatement("P31", "human")

	from := types.NewStatements()
	to := types.NewStatements()
	to.Insert(withID)
	to.Insert(withoutID)

	_, err := DiffStatements(from, to)
	is.True(goerrors.Is(err, errors.ErrMissingID))
}

func TestDiffStatementsSkipsUnappliedSourceStatements(t *testing.T) {
	is := is.New(t)

	unapplied := types.NewStringStatement("P31", "human")

	from := types.NewStatements()
	from.Insert(unapplied)
	to := types.NewStatements()

	p, err := DiffStatements(from, to)
	is.NoErr(err)
	is.True(p.IsEmpty())
}

func TestDiffStatement(t *testing.T) {
	is := is.New(t)

	before := types.NewStringStatement("P31", "human")
	before.ID = "Q42$0001"
	after := before.Clone()
	after.Rank = types.RankDeprecated

	p, err := DiffStatement(before, after)
	is.NoErr(err)
	is.Equal(p.StatementID(), "Q42$0001")
	is.Equal(p.Path(), "/statements/Q42$0001")
	is.Equal(p.Entries(), []Entry{
		NewEntry(OpReplace, "/rank", "deprecated"),
	})
}

func TestDiffStatementRejectsTargetWithoutID(t *testing.T) {
	is := is.New(t)

	before := types.NewStringStatement("P31", "human")
	before.ID = "Q42$0001"
	after := types.NewStringStatement("P31", "human")

	_, err := DiffStatement(before, after)
	is.True(goerrors.Is(err, errors.ErrMissingID))
}

func TestDiffItemComposesSubResources(t *testing.T) {
	is := is.New(t)

	st := types.NewStringStatement("P31", "human")
	st.ID = "Q42$0001"

	from := types.NewItem()
	from.Labels["en"] = "Douglas Adams"
	from.Aliases["en"] = []string{"DNA"}

	to := types.NewItem()
	to.Labels["en"] = "Douglas Noel Adams"
	to.Descriptions["en"] = "English writer"
	to.Aliases["en"] = []string{"DNA", "Douglas N. Adams"}
	to.Sitelinks["enwiki"] = types.NewSitelink("Douglas Adams")
	to.Statements.Insert(st)

	p, err := DiffItem(*from, *to)
	is.NoErr(err)

	entries := p.Entries()
	is.Equal(len(entries), 5)
	is.Equal(entries[0], NewEntry(OpReplace, "/labels/en", "Douglas Noel Adams"))
	is.Equal(entries[1], NewEntry(OpAdd, "/descriptions/en", "English writer"))
	is.Equal(entries[2], NewEntry(OpAdd, "/aliases/en/1", "Douglas N. Adams"))
	is.Equal(entries[3].Op, OpAdd)
	is.Equal(entries[3].Path, "/sitelinks/enwiki")
	is.Equal(entries[4].Op, OpAdd)
	is.Equal(entries[4].Path, "/statements/Q42$0001")
}

func TestDiffPropertyComposesSubResources(t *testing.T) {
	is := is.New(t)

	from := types.NewProperty()
	from.Labels["en"] = "instance of"

	to := types.NewProperty()
	to.Labels["en"] = "instance of"
	to.Aliases["en"] = []string{"is a"}

	p, err := DiffProperty(*from, *to)
	is.NoErr(err)
	is.Equal(p.Entries(), []Entry{
		NewEntry(OpAdd, "/aliases/en", []any{"is a"}),
	})
}

func TestManualBuilders(t *testing.T) {
	is := is.New(t)

	terms := NewLabelsPatch()
	terms.ReplaceLang("en", "Douglas Noel Adams")
	terms.RemoveLang("de")
	is.Equal(terms.Entries(), []Entry{
		NewEntry(OpReplace, "/en", "Douglas Noel Adams"),
		NewEntry(OpRemove, "/de", nil),
	})

	aliases := NewAliasesPatch()
	aliases.ReplaceAt("en", 1, "Boo")
	aliases.RemoveAt("en", 2)
	is.Equal(aliases.Entries(), []Entry{
		NewEntry(OpReplace, "/en/1", "Boo"),
		NewEntry(OpRemove, "/en/2", nil),
	})

	sitelinks := NewSitelinksPatch()
	sitelinks.ReplaceTitle("enwiki", "Douglas Adams")
	sitelinks.RemoveWiki("dewiki")
	is.Equal(sitelinks.Entries(), []Entry{
		NewEntry(OpReplace, "/enwiki/title", "Douglas Adams"),
		NewEntry(OpRemove, "/dewiki", nil),
	})
}

func TestSubResourcePaths(t *testing.T) {
	is := is.New(t)

	item, err := types.ParseEntityID("Q42")
	is.NoErr(err)
	property, err := types.ParseEntityID("P31")
	is.NoErr(err)

	labelsPath, err := NewLabelsPatch().Path(item)
	is.NoErr(err)
	is.Equal(labelsPath, "/entities/items/Q42/labels")

	descriptionsPath, err := NewDescriptionsPatch().Path(property)
	is.NoErr(err)
	is.Equal(descriptionsPath, "/entities/properties/P31/descriptions")

	aliasesPath, err := NewAliasesPatch().Path(item)
	is.NoErr(err)
	is.Equal(aliasesPath, "/entities/items/Q42/aliases")

	sitelinksPath, err := NewSitelinksPatch().Path(item)
	is.NoErr(err)
	is.Equal(sitelinksPath, "/entities/items/Q42/sitelinks")

	statementsPath, err := NewStatementsPatch().Path(item)
	is.NoErr(err)
	is.Equal(statementsPath, "/entities/items/Q42/statements")

	entityPath, err := NewEntityPatch().Path(item)
	is.NoErr(err)
	is.Equal(entityPath, "/entities/items/Q42")

	_, err = NewLabelsPatch().Path(types.EntityID{})
	is.True(goerrors.Is(err, errors.ErrNoEntityID))
}

func TestDiffEscapesPointerCharacters(t *testing.T) {
	is := is.New(t)

	from := map[string]string{"a/b": "x", "a~b": "y"}
	to := map[string]string{"a/b": "z", "a~b": "y"}

	entries, err := Diff(from, to)
	is.NoErr(err)
	is.Equal(entries, []Entry{
		NewEntry(OpReplace, "/a~1b", "z"),
	})
	is.Equal(applyEntries(is, from, entries), canonical(is, to))
}

func TestDiffReplacesOnKindChange(t *testing.T) {
	is := is.New(t)

	from := map[string]any{"a": []any{"x"}}
	to := map[string]any{"a": map[string]any{"b": "x"}}

	entries, err := Diff(from, to)
	is.NoErr(err)
	is.Equal(entries, []Entry{
		NewEntry(OpReplace, "/a", map[string]any{"b": "x"}),
	})
}

// applyEntries replays a patch against the JSON form of from and
// returns the resulting document.
func applyEntries(is *is.I, from any, entries []Entry) any {
	patchBody, err := json.Marshal(entries)
	is.NoErr(err)

	decoded, err := jsonpatch.DecodePatch(patchBody)
	is.NoErr(err)

	doc, err := json.Marshal(from)
	is.NoErr(err)

	patched, err := decoded.Apply(doc)
	is.NoErr(err)

	var tree any
	err = json.Unmarshal(patched, &tree)
	is.NoErr(err)
	return tree
}

func canonical(is *is.I, v any) any {
	b, err := json.Marshal(v)
	is.NoErr(err)

	var tree any
	err = json.Unmarshal(b, &tree)
	is.NoErr(err)
	return tree
}
