package story

import "fmt"

func errMalformed(mode string, err error) error {
	return fmt.Errorf("malformed %s response: %w", mode, err)
}

func errCardinality(got, want int) error {
	return fmt.Errorf("caption count mismatch: got %d, want %d", got, want)
}

func errBrokenBinding(url string) error {
	return fmt.Errorf("caption references unknown or duplicate photo url %q", url)
}

func errEmptyCaption(url string) error {
	return fmt.Errorf("empty caption for photo url %q", url)
}

func errEmptyBody() error {
	return fmt.Errorf("empty narrative content")
}
