package content

import (
	"fmt"
	"sort"
)

// Person is an author or contributor profile.
type Person struct {
	Nickname string
	Name     string
	Params   map[string]any
	Body     string
}

// People maps nicknames to profiles.
type People map[string]*Person

// LoadPerson reads a profile. Its front matter must carry a nickname.
func LoadPerson(src string) (*Person, error) {
	raw, err := readSource(src)
	if err != nil {
		return nil, err
	}
	fields, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter of %s: %w", src, err)
	}

	fields, err = lowerKeys(fields)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", src, err)
	}

	person := &Person{Params: make(map[string]any), Body: body}
	for key, value := range fields {
		switch key {
		case "nickname":
			if person.Nickname, err = asString(key, value); err != nil {
				return nil, fmt.Errorf("invalid profile %s: %w", src, err)
			}
		case "name":
			if person.Name, err = asString(key, value); err != nil {
				return nil, fmt.Errorf("invalid profile %s: %w", src, err)
			}
		default:
			person.Params[key] = value
		}
	}
	if person.Nickname == "" {
		return nil, fmt.Errorf("profile %s has no nickname", src)
	}
	if person.Name == "" {
		person.Name = person.Nickname
	}
	return person, nil
}

// LoadPeople loads every profile in srcs.
func LoadPeople(srcs []string) (People, error) {
	people := make(People, len(srcs))
	for _, src := range srcs {
		person, err := LoadPerson(src)
		if err != nil {
			return nil, err
		}
		if _, ok := people[person.Nickname]; ok {
			return nil, fmt.Errorf("%w: person %q (%s)", ErrDuplicateKey, person.Nickname, src)
		}
		people[person.Nickname] = person
	}
	return people, nil
}

// Get returns the profile for nick.
func (p People) Get(nick string) (*Person, error) {
	person, ok := p[nick]
	if !ok {
		return nil, fmt.Errorf("%w: person %q", ErrNotFound, nick)
	}
	return person, nil
}

// Sorted returns the profiles ordered by nickname.
func (p People) Sorted() []*Person {
	out := make([]*Person, 0, len(p))
	for _, person := range p {
		out = append(out, person)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nickname < out[j].Nickname })
	return out
}
