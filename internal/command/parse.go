package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andy/clienthub/internal/domain"
)

// Prefixes tagging arguments on a command line, e.g. "add name/John Doe".
const (
	prefixName     = "name/"
	prefixPhone    = "phone/"
	prefixEmail    = "email/"
	prefixAddress  = "address/"
	prefixTag      = "tag/"
	prefixPref     = "pref/"
	prefixFreq     = "freq/"
	prefixPriority = "priority/"
)

// Parse turns one line of user input into a command, or fails with a
// format-invalid or validation error. It never touches the registry.
func Parse(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, validationErr(MsgUnknownCommand)
	}

	word, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)

	switch word {
	case "add":
		return parseAdd(rest)
	case "edit":
		return parseEdit(rest)
	case "delete":
		return parseDelete(rest)
	case "list":
		return List{}, nil
	case "find":
		return parseFind(rest)
	case "filter":
		return parseFilter(rest)
	case "rank":
		return parseRank(rest)
	case "desc":
		return parseDesc(rest)
	case "expand":
		return parseExpand(rest)
	case "clear":
		return Clear{}, nil
	case "exit":
		return Exit{}, nil
	case "help":
		return Help{}, nil
	default:
		return nil, validationErr(MsgUnknownCommand)
	}
}

// args maps each prefix to the values supplied for it, in order of
// appearance. Text before the first prefix is the preamble.
type args struct {
	preamble string
	values   map[string][]string
}

// tokenize splits raw argument text on the given prefixes. A prefix only
// counts when it starts the text or follows whitespace; a value runs until
// the next prefix occurrence.
func tokenize(raw string, prefixes ...string) args {
	type hit struct {
		pos    int
		prefix string
	}
	var hits []hit
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(raw[from:], p)
			if i < 0 {
				break
			}
			abs := from + i
			if abs == 0 || raw[abs-1] == ' ' {
				hits = append(hits, hit{pos: abs, prefix: p})
			}
			from = abs + len(p)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := args{values: make(map[string][]string)}
	if len(hits) == 0 {
		out.preamble = strings.TrimSpace(raw)
		return out
	}
	out.preamble = strings.TrimSpace(raw[:hits[0].pos])
	for i, h := range hits {
		end := len(raw)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		value := strings.TrimSpace(raw[h.pos+len(h.prefix) : end])
		out.values[h.prefix] = append(out.values[h.prefix], value)
	}
	return out
}

// value returns the last value supplied for a single-valued prefix.
func (a args) value(prefix string) (string, bool) {
	vs := a.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a args) all(prefix string) []string {
	return a.values[prefix]
}

// checkNoDuplicates aggregates every single-valued prefix supplied more than
// once into one error listing all of them.
func (a args) checkNoDuplicates(prefixes ...string) error {
	var dups []string
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return validationErr(msgDuplicatePrefixes + strings.Join(dups, " "))
}

// parseIndex parses a 1-based display index.
func parseIndex(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 || strings.HasPrefix(trimmed, "+") {
		return 0, validationErr(MsgIndexFormat)
	}
	return n, nil
}

func invalidFormat(usage string) error {
	return validationErr(fmt.Sprintf(MsgInvalidFormat, usage))
}

func parseAdd(raw string) (Command, error) {
	a := tokenize(raw, prefixName, prefixPhone, prefixEmail, prefixAddress,
		prefixTag, prefixPref, prefixFreq)
	if a.preamble != "" {
		return nil, invalidFormat(AddUsage)
	}
	if err := a.checkNoDuplicates(prefixName, prefixPhone, prefixEmail, prefixAddress,
		prefixPref, prefixFreq); err != nil {
		return nil, err
	}

	rawName, okName := a.value(prefixName)
	rawPhone, okPhone := a.value(prefixPhone)
	rawEmail, okEmail := a.value(prefixEmail)
	rawAddress, okAddress := a.value(prefixAddress)
	if !okName || !okPhone || !okEmail || !okAddress {
		return nil, invalidFormat(AddUsage)
	}

	name, err := domain.ParseName(rawName)
	if err != nil {
		return nil, err
	}
	phone, err := domain.ParsePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	email, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	address, err := domain.ParseAddress(rawAddress)
	if err != nil {
		return nil, err
	}

	var tags []domain.Tag
	for _, rawTag := range a.all(prefixTag) {
		tag, err := domain.ParseTag(rawTag)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	preference, err := parsePreference(a)
	if err != nil {
		return nil, err
	}

	client, err := domain.NewClient(name, phone, email, address, tags, preference, nil, nil)
	if err != nil {
		return nil, err
	}
	return Add{Client: client}, nil
}

// parsePreference reads the pref/ and freq/ pair shared by add and edit.
// Returns nil when neither prefix is present.
func parsePreference(a args) (*domain.ProductPreference, error) {
	rawPref, hasPref := a.value(prefixPref)
	rawFreq, hasFreq := a.value(prefixFreq)

	if hasFreq && !hasPref {
		return nil, validationErr(MsgFrequencyAlone)
	}
	if !hasPref {
		return nil, nil
	}

	var freq *domain.Frequency
	if hasFreq {
		f, err := domain.ParseFrequency(rawFreq)
		if err != nil {
			return nil, err
		}
		freq = &f
	}
	pref, err := domain.NewProductPreference(rawPref, freq)
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func parseEdit(raw string) (Command, error) {
	a := tokenize(raw, prefixName, prefixPhone, prefixEmail, prefixAddress,
		prefixTag, prefixPref, prefixFreq, prefixPriority)
	if a.preamble == "" {
		return nil, invalidFormat(EditUsage)
	}
	index, err := parseIndex(a.preamble)
	if err != nil {
		return nil, err
	}
	if err := a.checkNoDuplicates(prefixName, prefixPhone, prefixEmail, prefixAddress,
		prefixPref, prefixFreq, prefixPriority); err != nil {
		return nil, err
	}

	var d Descriptor
	if raw, ok := a.value(prefixName); ok {
		name, err := domain.ParseName(raw)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if raw, ok := a.value(prefixPhone); ok {
		phone, err := domain.ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if raw, ok := a.value(prefixEmail); ok {
		email, err := domain.ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if raw, ok := a.value(prefixAddress); ok {
		address, err := domain.ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}

	if rawTags := a.all(prefixTag); len(rawTags) > 0 {
		// a single blank tag/ clears the whole set
		if len(rawTags) == 1 && rawTags[0] == "" {
			d.Tags = ClearField[[]domain.Tag]()
		} else {
			var tags []domain.Tag
			for _, rawTag := range rawTags {
				tag, err := domain.ParseTag(rawTag)
				if err != nil {
					return nil, err
				}
				tags = append(tags, tag)
			}
			d.Tags = SetField(tags)
		}
	}

	preference, err := parsePreference(a)
	if err != nil {
		return nil, err
	}
	if preference != nil {
		d.Preference = SetField(*preference)
	}

	if raw, ok := a.value(prefixPriority); ok {
		// blank clears the priority, a value replaces it, absence keeps it
		if raw == "" {
			d.Priority = ClearField[domain.Priority]()
		} else {
			priority, err := domain.ParsePriority(raw)
			if err != nil {
				return nil, err
			}
			d.Priority = SetField(priority)
		}
	}

	if d.Empty() {
		return nil, validationErr(MsgNothingEdited)
	}
	return Edit{Index: index, Descriptor: d}, nil
}

func parseDelete(raw string) (Command, error) {
	if raw == "" {
		return nil, invalidFormat(DeleteUsage)
	}
	index, err := parseIndex(raw)
	if err != nil {
		return nil, err
	}
	return Delete{Index: index}, nil
}

func parseFind(raw string) (Command, error) {
	keywords := strings.Fields(raw)
	if len(keywords) == 0 {
		return nil, invalidFormat(FindUsage)
	}
	return Find{Keywords: keywords}, nil
}

func parseFilter(raw string) (Command, error) {
	a := tokenize(raw, prefixPref, prefixPriority)
	if err := a.checkNoDuplicates(prefixPref, prefixPriority); err != nil {
		return nil, err
	}
	rawPref, hasPref := a.value(prefixPref)
	rawPriority, hasPriority := a.value(prefixPriority)

	if hasPref == hasPriority { // zero or both selectors
		return nil, validationErr(MsgOneFilterOnly)
	}
	if hasPref {
		if rawPref == "" {
			return nil, validationErr(MsgOneFilterOnly)
		}
		return Filter{Preference: rawPref}, nil
	}
	if rawPriority == "" {
		return nil, validationErr(MsgOneFilterOnly)
	}
	priority, err := domain.ParsePriority(rawPriority)
	if err != nil {
		return nil, err
	}
	return Filter{Priority: &priority}, nil
}

func parseRank(raw string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "name":
		return Rank{By: RankByName}, nil
	case "total":
		return Rank{By: RankByTotal}, nil
	default:
		return nil, validationErr(MsgUnknownRankKey)
	}
}

func parseDesc(raw string) (Command, error) {
	if raw == "" {
		return nil, invalidFormat(DescUsage)
	}
	rawIndex, text, _ := strings.Cut(raw, " ")
	index, err := parseIndex(rawIndex)
	if err != nil {
		return nil, err
	}
	return Desc{Index: index, Text: strings.TrimSpace(text)}, nil
}

func parseExpand(raw string) (Command, error) {
	if raw == "" {
		return nil, invalidFormat(ExpandUsage)
	}
	index, err := parseIndex(raw)
	if err != nil {
		return nil, err
	}
	return Expand{Index: index}, nil
}
