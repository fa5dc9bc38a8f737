package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Validate(t *testing.T) {
	valid := func() *Message {
		return &Message{Name: "Visitor", Email: "visitor@example.com", Body: "Hello there"}
	}

	assert.NoError(t, valid().Validate())

	m := valid()
	m.Name = ""
	assert.ErrorIs(t, m.Validate(), ErrNameRequired)

	m = valid()
	m.Email = "not-an-email"
	assert.ErrorIs(t, m.Validate(), ErrInvalidEmail)

	m = valid()
	m.Body = ""
	assert.ErrorIs(t, m.Validate(), ErrMessageRequired)

	m = valid()
	m.Body = strings.Repeat("a", MaxBodyLength+1)
	assert.ErrorIs(t, m.Validate(), ErrTooLong)

	m = valid()
	subject := strings.Repeat("s", MaxSubjectLength+1)
	m.Subject = &subject
	assert.ErrorIs(t, m.Validate(), ErrTooLong)
}
