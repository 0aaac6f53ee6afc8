package validate

import (
	"fmt"
	"regexp"
)

// SpaceID must be letters, digits, hyphen or underscore, 1-64 chars.
var spaceIdRx = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

func SpaceID(v string) error {
	if v == "" {
		return fmt.Errorf("spaceId is required")
	}
	if !spaceIdRx.MatchString(v) {
		return fmt.Errorf("spaceId must match %s", spaceIdRx.String())
	}
	return nil
}

// -------- Request specific helpers ----------

// AddMemory validates input for contributing a memory. The photo URL's
// shape is checked separately during normalization.
func AddMemory(spaceId, displayName, note, photoUrl string) error {
	if err := SpaceID(spaceId); err != nil {
		return err
	}
	if err := NonEmpty("displayName", displayName); err != nil {
		return err
	}
	if err := MaxLen("displayName", displayName, 100); err != nil {
		return err
	}
	if err := NonEmpty("note", note); err != nil {
		return err
	}
	if err := MaxLen("note", note, 2000); err != nil {
		return err
	}
	return NonEmpty("photoUrl", photoUrl)
}
