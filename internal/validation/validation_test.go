package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Validate(t *testing.T) {
	schema := Schema{
		"name":     {Required: true, Message: "Name is required"},
		"address":  {MinLength: 5, Message: "Full address is required"},
		"bedrooms": {MinNumber: MinNumber(0), Message: "Must be a positive number"},
	}

	tests := []struct {
		name   string
		values map[string]interface{}
		want   Errors
	}{
		{
			name:   "all valid",
			values: map[string]interface{}{"name": "A", "address": "12 Example St", "bedrooms": 3},
			want:   nil,
		},
		{
			name:   "missing required string",
			values: map[string]interface{}{"name": "", "address": "12 Example St", "bedrooms": 0},
			want:   Errors{"name": "Name is required"},
		},
		{
			name:   "string below minimum length",
			values: map[string]interface{}{"name": "A", "address": "12", "bedrooms": 0},
			want:   Errors{"address": "Full address is required"},
		},
		{
			name:   "negative number",
			values: map[string]interface{}{"name": "A", "address": "12 Example St", "bedrooms": -1},
			want:   Errors{"bedrooms": "Must be a positive number"},
		},
		{
			name:   "zero passes the minimum-value rule",
			values: map[string]interface{}{"name": "A", "address": "12 Example St", "bedrooms": 0},
			want:   nil,
		},
		{
			name:   "absent required field",
			values: map[string]interface{}{"address": "12 Example St", "bedrooms": 0},
			want:   Errors{"name": "Name is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schema.Validate(tt.values)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchema_Validate_MinLengthCountsCharacters(t *testing.T) {
	schema := Schema{
		"description": {MinLength: 20, Message: "Description must be at least 20 characters"},
	}

	// 7 characters but 21 bytes: byte counting would wrongly accept this.
	errs := schema.Validate(map[string]interface{}{"description": "漂亮的三房住宅"})
	assert.Equal(t, Errors{"description": "Description must be at least 20 characters"}, errs)

	errs = schema.Validate(map[string]interface{}{"description": strings.Repeat("好", 20)})
	assert.Nil(t, errs)
}

func TestSchema_Validate_EmptyStringFailsMinLength(t *testing.T) {
	schema := Schema{
		"description": {MinLength: 20, Message: "Description must be at least 20 characters"},
	}

	errs := schema.Validate(map[string]interface{}{"description": ""})
	assert.Equal(t, Errors{"description": "Description must be at least 20 characters"}, errs)
}
