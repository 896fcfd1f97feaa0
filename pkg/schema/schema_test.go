package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validx/pkg/schema"
)

// stubParser fails every value with a fixed violation list, succeeds when
// violations is empty.
func stubParser(violations ...schema.Violation) schema.Parser {
	return schema.ParserFunc(func(v any) schema.Result {
		if len(violations) == 0 {
			return schema.Result{OK: true, Value: v}
		}
		return schema.Result{Violations: violations}
	})
}

func TestValidate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.True(t, schema.Validate(stubParser(), "anything"))
	})

	t.Run("failure suppresses detail", func(t *testing.T) {
		p := stubParser(schema.Violation{Message: "nope"})
		assert.False(t, schema.Validate(p, "anything"))
	})
}

func TestExplain(t *testing.T) {
	t.Run("success returns nil messages", func(t *testing.T) {
		ok, msgs := schema.Explain(stubParser(), 42)
		assert.True(t, ok)
		assert.Nil(t, msgs)
	})

	t.Run("single violation", func(t *testing.T) {
		p := stubParser(schema.Violation{Path: []string{"email"}, Message: "invalid"})

		ok, msgs := schema.Explain(p, "x")
		assert.False(t, ok)
		assert.Equal(t, []string{"email: invalid"}, msgs)
	})

	t.Run("multiple violations keep engine order", func(t *testing.T) {
		p := stubParser(
			schema.Violation{Path: []string{"a"}, Message: "first"},
			schema.Violation{Path: []string{"b"}, Message: "second"},
		)

		ok, msgs := schema.Explain(p, "x")
		assert.False(t, ok)
		assert.Equal(t, []string{"a: first", "b: second"}, msgs)
	})

	t.Run("formatting options are honored", func(t *testing.T) {
		p := stubParser(schema.Violation{Path: []string{"a", "b"}, Message: "bad"})

		_, msgs := schema.Explain(p, "x", schema.PathSeparator("::"), schema.PathPrefix("req"))
		assert.Equal(t, []string{"req::a::b: bad"}, msgs)
	})
}

func TestParse(t *testing.T) {
	t.Run("success returns nil", func(t *testing.T) {
		assert.NoError(t, schema.Parse(stubParser(), "x"))
	})

	t.Run("failure returns Error with messages", func(t *testing.T) {
		p := stubParser(
			schema.Violation{Path: []string{"a"}, Message: "first"},
			schema.Violation{Message: "second"},
		)

		err := schema.Parse(p, "x")
		require.Error(t, err)

		var schemaErr *schema.Error
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{"a: first", "second"}, schemaErr.Messages)
		assert.Equal(t, "a: first\nsecond", err.Error())
	})

	t.Run("custom message separator", func(t *testing.T) {
		p := stubParser(
			schema.Violation{Message: "first"},
			schema.Violation{Message: "second"},
		)

		err := schema.Parse(p, "x", schema.MessageSeparator("; "))
		require.Error(t, err)
		assert.Equal(t, "first; second", err.Error())
	})
}
