package graphql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLevelFieldQuery(t *testing.T) {
	op, err := topLevelField(`query users($name: String, $first: Int, $page: Int) {
  users(name: $name, first: $first, page: $page) {
    paginatorInfo { count }
    data { id }
  }
}`)
	require.NoError(t, err)
	assert.Equal(t, "users", op.Name)
	assert.Equal(t, 2, op.Line)
	assert.Equal(t, 3, op.Column)
}

func TestTopLevelFieldMutation(t *testing.T) {
	op, err := topLevelField(`mutation userCreate($name: String, $email: String, $password: String) {
  userCreate(name: $name, email: $email, password: $password) { id }
}`)
	require.NoError(t, err)
	assert.Equal(t, "userCreate", op.Name)
}

func TestTopLevelFieldShorthandAndComments(t *testing.T) {
	op, err := topLevelField("# listing\n{ user(id: \"1\") { id } }")
	require.NoError(t, err)
	assert.Equal(t, "user", op.Name)
}

func TestTopLevelFieldEmptyDocument(t *testing.T) {
	_, err := topLevelField("query {}")
	assert.Error(t, err)

	_, err = topLevelField("")
	assert.Error(t, err)
}

func TestVars(t *testing.T) {
	req := Request{Variables: json.RawMessage(`{"name":"%%","first":10,"page":1}`)}
	vars := req.vars()

	assert.Equal(t, "%%", strVar(vars, "name"))
	assert.Equal(t, 10, intVar(vars, "first", 5))
	assert.Equal(t, 1, intVar(vars, "page", 1))
	assert.Equal(t, 5, intVar(vars, "missing", 5))
	assert.Equal(t, "", strVar(vars, "missing"))
}
