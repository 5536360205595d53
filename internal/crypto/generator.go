package crypto

import (
	"errors"
	"fmt"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ErrConfiguration is wrapped by every validation error returned from Generate.
var ErrConfiguration = errors.New("invalid generator configuration")

var (
	ErrNoCharacterTypes    = fmt.Errorf("%w: no character class selected", ErrConfiguration)
	ErrInvalidLength       = fmt.Errorf("%w: length must be positive", ErrConfiguration)
	ErrInvalidMinimum      = fmt.Errorf("%w: minimum per class must not be negative", ErrConfiguration)
	ErrLengthInsufficient  = fmt.Errorf("%w: length too short for minimum-per-class requirement", ErrConfiguration)
	ErrMinimumExceedsClass = fmt.Errorf("%w: minimum per class exceeds the size of a selected character class", ErrConfiguration)
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	MinOfEach int
}

// DefaultOptions returns 12 characters with all types enabled and at least one of each.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
		MinOfEach: 1,
	}
}

// classes returns the alphabets of the enabled character classes in a fixed order.
func (o GeneratorOptions) classes() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Validate reports whether the options can produce a password.
func (o GeneratorOptions) Validate() error {
	sets := o.classes()
	if len(sets) == 0 {
		return ErrNoCharacterTypes
	}
	if o.Length <= 0 {
		return ErrInvalidLength
	}
	if o.MinOfEach < 0 {
		return ErrInvalidMinimum
	}
	if o.MinOfEach*len(sets) > o.Length {
		return ErrLengthInsufficient
	}
	for _, set := range sets {
		if o.MinOfEach > len(set) {
			return ErrMinimumExceedsClass
		}
	}
	return nil
}

// Generate creates a password from opts, drawing randomness from src.
// A nil src uses crypto/rand.
func Generate(src Source, opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if src == nil {
		src = CryptoSource{}
	}

	sets := opts.classes()
	result := make([]byte, 0, opts.Length)

	// Guarantee MinOfEach distinct characters from each selected type.
	var pool string
	for _, charset := range sets {
		pool += charset
		picked, err := sample(src, charset, opts.MinOfEach)
		if err != nil {
			return "", err
		}
		result = append(result, picked...)
	}

	// Fill the remaining positions from the full pool.
	for len(result) < opts.Length {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// sample picks k distinct characters from charset without replacement.
func sample(src Source, charset string, k int) ([]byte, error) {
	if k == 0 {
		return nil, nil
	}
	buf := []byte(charset)
	for i := 0; i < k; i++ {
		j, err := src.IntN(len(buf) - i)
		if err != nil {
			return nil, err
		}
		j += i
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k], nil
}

// randChar picks a random character from charset.
func randChar(src Source, charset string) (byte, error) {
	n, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
