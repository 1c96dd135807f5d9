package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/clienthub/internal/domain"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("add name/john doe phone/98765432 email/j@e.com address/Blk 1 tag/vip tag/regular pref/Shampoo freq/7")
	require.NoError(t, err)
	add, ok := cmd.(Add)
	require.True(t, ok)

	assert.Equal(t, "John Doe", add.Client.Name().String())
	assert.Equal(t, "98765432", add.Client.Phone().String())
	assert.Len(t, add.Client.Tags(), 2)
	pref, hasPref := add.Client.Preference()
	require.True(t, hasPref)
	assert.Equal(t, "Shampoo", pref.Label())
	assert.Equal(t, 7, add.Client.TotalPurchase())
}

func TestParseAddPreferenceWithoutFrequencyDefaults(t *testing.T) {
	cmd, err := Parse("add name/John phone/98765432 email/j@e.com address/Blk 1 pref/Tea")
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.(Add).Client.TotalPurchase())
}

func TestParseAddErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing name", "add phone/98765432 email/j@e.com address/Blk 1"},
		{"missing phone", "add name/John email/j@e.com address/Blk 1"},
		{"non-empty preamble", "add 1 name/John phone/98765432 email/j@e.com address/Blk 1"},
		{"bad phone", "add name/John phone/12345678 email/j@e.com address/Blk 1"},
		{"bad name", "add name/J0hn phone/98765432 email/j@e.com address/Blk 1"},
		{"frequency without preference", "add name/John phone/98765432 email/j@e.com address/Blk 1 freq/3"},
		{"blank preference", "add name/John phone/98765432 email/j@e.com address/Blk 1 pref/ freq/3"},
		{"negative frequency", "add name/John phone/98765432 email/j@e.com address/Blk 1 pref/Tea freq/-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseAddDuplicatePrefixesAggregated(t *testing.T) {
	_, err := Parse("add name/John name/Jane phone/98765432 phone/91234567 email/j@e.com address/Blk 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Multiple values specified")
	assert.Contains(t, err.Error(), "name/")
	assert.Contains(t, err.Error(), "phone/")
	assert.NotContains(t, err.Error(), "email/")
}

func TestParseEditTriStatePriority(t *testing.T) {
	// value sets
	cmd, err := Parse("edit 1 priority/2")
	require.NoError(t, err)
	p, isSet := cmd.(Edit).Descriptor.Priority.Get()
	require.True(t, isSet)
	assert.Equal(t, domain.Priority(2), p)

	// explicit blank clears
	cmd, err = Parse("edit 1 priority/")
	require.NoError(t, err)
	assert.True(t, cmd.(Edit).Descriptor.Priority.IsClear())

	// omitted leaves untouched
	cmd, err = Parse("edit 1 name/John")
	require.NoError(t, err)
	assert.True(t, cmd.(Edit).Descriptor.Priority.IsUnset())
}

func TestParseEditTagClearing(t *testing.T) {
	cmd, err := Parse("edit 1 tag/")
	require.NoError(t, err)
	assert.True(t, cmd.(Edit).Descriptor.Tags.IsClear())

	cmd, err = Parse("edit 2 tag/vip tag/regular")
	require.NoError(t, err)
	tags, isSet := cmd.(Edit).Descriptor.Tags.Get()
	require.True(t, isSet)
	assert.Len(t, tags, 2)
}

func TestParseEditErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fields", "edit 1", MsgNothingEdited},
		{"no index", "edit name/John", MsgIndexFormat},
		{"zero index", "edit 0 name/John", MsgIndexFormat},
		{"negative index", "edit -1 name/John", MsgIndexFormat},
		{"frequency alone", "edit 1 freq/3", MsgFrequencyAlone},
		{"blank preference", "edit 1 pref/", domain.PreferenceConstraints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseEditPrefixValueWithSpaces(t *testing.T) {
	cmd, err := Parse("edit 3 address/Blk 30 Geylang Street 29 name/Mary Jane")
	require.NoError(t, err)
	edit := cmd.(Edit)
	require.NotNil(t, edit.Descriptor.Address)
	assert.Equal(t, "Blk 30 Geylang Street 29", edit.Descriptor.Address.String())
	require.NotNil(t, edit.Descriptor.Name)
	assert.Equal(t, "Mary Jane", edit.Descriptor.Name.String())
}

func TestParseDelete(t *testing.T) {
	cmd, err := Parse("delete 3")
	require.NoError(t, err)
	assert.Equal(t, 3, cmd.(Delete).Index)

	for _, input := range []string{"delete", "delete 0", "delete x", "delete 1.5"} {
		_, err := Parse(input)
		assert.Error(t, err, input)
	}
}

func TestParseFind(t *testing.T) {
	cmd, err := Parse("find alice tea vip")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "tea", "vip"}, cmd.(Find).Keywords)

	_, err = Parse("find")
	assert.Error(t, err)
	_, err = Parse("find   ")
	assert.Error(t, err)
}

func TestParseFilter(t *testing.T) {
	cmd, err := Parse("filter pref/coffee")
	require.NoError(t, err)
	assert.Equal(t, "coffee", cmd.(Filter).Preference)
	assert.Nil(t, cmd.(Filter).Priority)

	cmd, err = Parse("filter priority/1")
	require.NoError(t, err)
	require.NotNil(t, cmd.(Filter).Priority)
	assert.Equal(t, domain.Priority(1), *cmd.(Filter).Priority)
}

func TestParseFilterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no selector", "filter"},
		{"both selectors", "filter priority/1 pref/tea"},
		{"blank preference", "filter pref/ "},
		{"blank priority", "filter priority/"},
		{"out of range priority", "filter priority/9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseFilterDuplicatePrefixesAggregated(t *testing.T) {
	_, err := Parse("filter pref/tea pref/coffee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Multiple values specified")
	assert.Contains(t, err.Error(), "pref/")

	_, err = Parse("filter priority/1 priority/2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority/")
}

func TestParseRank(t *testing.T) {
	cmd, err := Parse("rank name")
	require.NoError(t, err)
	assert.Equal(t, RankByName, cmd.(Rank).By)

	cmd, err = Parse("rank total")
	require.NoError(t, err)
	assert.Equal(t, RankByTotal, cmd.(Rank).By)

	_, err = Parse("rank age")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid ranking keyword")
	_, err = Parse("rank")
	assert.Error(t, err)
}

func TestParseDesc(t *testing.T) {
	cmd, err := Parse("desc 2 long time customer")
	require.NoError(t, err)
	assert.Equal(t, 2, cmd.(Desc).Index)
	assert.Equal(t, "long time customer", cmd.(Desc).Text)

	// no text clears
	cmd, err = Parse("desc 2")
	require.NoError(t, err)
	assert.Empty(t, cmd.(Desc).Text)

	_, err = Parse("desc")
	assert.Error(t, err)
}

func TestParseBareCommands(t *testing.T) {
	for input, want := range map[string]Command{
		"list":  List{},
		"clear": Clear{},
		"exit":  Exit{},
		"help":  Help{},
	} {
		cmd, err := Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, cmd, input)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	for _, input := range []string{"", "   ", "frobnicate", "ad name/John"} {
		_, err := Parse(input)
		require.Error(t, err, input)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, input)
	}
}

func TestTokenizePrefixOnlyAfterWhitespace(t *testing.T) {
	// "pref/" inside a value must not start a new argument
	a := tokenize("name/Shopref/ting phone/98765432", prefixName, prefixPhone, prefixPref)
	v, ok := a.value(prefixName)
	require.True(t, ok)
	assert.Equal(t, "Shopref/ting", v)
	_, hasPref := a.value(prefixPref)
	assert.False(t, hasPref)
}
