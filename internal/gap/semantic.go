package gap

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Semantic checks run only after structural validation, so the required
// fields are present and of the expected shape. Order matters: authors,
// then sponsor, then discussion; the first violation wins.

// CheckAuthor verifies a single author entry: a bare email address or a
// "Display Name <email>" form per RFC 5322.
func CheckAuthor(author string) error {
	if _, err := mail.ParseAddress(author); err != nil {
		return fmt.Errorf("author %q must be an email address or 'Name <email>' form", author)
	}
	return nil
}

// CheckAuthors validates every author entry in sequence, failing on the
// first invalid one.
func CheckAuthors(authors []string) error {
	for _, a := range authors {
		if err := CheckAuthor(a); err != nil {
			return err
		}
	}
	return nil
}

// CheckSponsor verifies the sponsor handle starts with '@'. No further
// character-set constraints apply.
func CheckSponsor(sponsor string) error {
	if !strings.HasPrefix(sponsor, "@") {
		return fmt.Errorf("sponsor %q must start with '@'", sponsor)
	}
	return nil
}

// CheckDiscussion verifies the discussion link is an absolute URL with a
// scheme and host.
func CheckDiscussion(discussion string) error {
	u, err := url.Parse(discussion)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("discussion %q is not a valid URL", discussion)
	}
	return nil
}

// checkSemantics applies the three semantic predicates to a structurally
// valid metadata mapping.
func checkSemantics(doc map[string]interface{}) error {
	if err := CheckAuthors(stringSlice(doc["authors"])); err != nil {
		return err
	}
	sponsor, _ := doc["sponsor"].(string)
	if err := CheckSponsor(sponsor); err != nil {
		return err
	}
	discussion, _ := doc["discussion"].(string)
	return CheckDiscussion(discussion)
}

func stringSlice(v interface{}) []string {
	items, _ := v.([]interface{})
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
