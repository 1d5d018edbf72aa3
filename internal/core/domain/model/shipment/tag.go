package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Tag is a named label from a closed enumeration that can be attached to a
// shipment. Each tag carries a fixed handling instruction. Tags are shared
// reference data; a shipment holds a set of them.
type Tag int

const (
	// TagUnknown represents an invalid or undefined tag.
	TagUnknown Tag = iota
	// TagFragile marks contents that need careful handling.
	TagFragile
	// TagExpress marks shipments with priority handling.
	TagExpress
	// TagPerishable marks contents with a limited shelf life.
	TagPerishable
	// TagHeavy marks shipments above comfortable single-person lifting weight.
	TagHeavy
	// TagDocuments marks paper documents.
	TagDocuments
	// TagGift marks shipments to be delivered as a gift.
	TagGift
)

// getValidTagStrings returns the wire names of the valid tags.
func getValidTagStrings() map[Tag]string {
	//nolint:exhaustive // TagUnknown is intentionally excluded as it's invalid
	return map[Tag]string{
		TagFragile:    "fragile",
		TagExpress:    "express",
		TagPerishable: "perishable",
		TagHeavy:      "heavy",
		TagDocuments:  "documents",
		TagGift:       "gift",
	}
}

// getTagInstructions returns the fixed handling instruction for each tag.
func getTagInstructions() map[Tag]string {
	//nolint:exhaustive // TagUnknown has no instruction
	return map[Tag]string{
		TagFragile:    "Handle with care",
		TagExpress:    "Deliver within 24 hours",
		TagPerishable: "Keep away from heat",
		TagHeavy:      "Lift with assistance",
		TagDocuments:  "Do not fold",
		TagGift:       "Deliver with gift wrap intact",
	}
}

// TagFromString parses a Tag from its wire name.
// Returns an error for any string outside the closed enumeration.
func TagFromString(s string) (Tag, error) {
	for tag, str := range getValidTagStrings() {
		if str == s {
			return tag, nil
		}
	}
	return TagUnknown, errs.NewValueIsInvalidErrorWithCause("tag",
		fmt.Errorf("%q is not a valid tag", s))
}

// Validate checks if the Tag is one of the closed enumeration values.
func (t Tag) Validate() error {
	if _, ok := getValidTagStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tag",
			fmt.Errorf("%d is not a valid tag", t))
	}
	return nil
}

// String returns the wire name of the tag, e.g. "fragile".
// Returns "unknown" for invalid tag values.
func (t Tag) String() string {
	if str, ok := getValidTagStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Instruction returns the fixed handling instruction associated with the tag.
// Returns the empty string for invalid tag values.
func (t Tag) Instruction() string {
	return getTagInstructions()[t]
}
