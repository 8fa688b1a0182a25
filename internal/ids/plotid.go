// Package ids turns sequential plot numbers into short public identifiers.
package ids

import (
	"errors"
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
)

const minLength = 6

var ErrInvalidID = errors.New("invalid id")

type Codec struct {
	h *hashids.HashID
}

func NewCodec(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("hashids: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(n int) (string, error) {
	return c.h.Encode([]int{n})
}

func (c *Codec) Decode(id string) (int, error) {
	nums, err := c.h.DecodeWithError(id)
	if err != nil || len(nums) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nums[0], nil
}
