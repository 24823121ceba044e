package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flprog-tools/ino2ubi/internal/block"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind Kind
	}{
		{"blank", "   ", KindBlank},
		{"include", `#include "config.h"`, KindDirective},
		{"define", "#define LED 13", KindDirective},
		{"define without value", "#define DEBUG", KindOther},
		{"declaration", "int x = 1;", KindDeclaration},
		{"declaration without default", "float y;", KindDeclaration},
		{"object with constructor", "Servo myservo(9);", KindObjectDecl},
		{"object via assignment", "SoftwareSerial s = SoftwareSerial(7, 8);", KindObjectDecl},
		{"bare object", "Servo myservo;", KindObjectDecl},
		{"prototype", "void doStuff(int x);", KindObjectDecl},
		{"assignment", "x = 5;", KindOther},
		{"call statement", "Serial.begin(9600);", KindOther},
		{"array declaration", "int vals[] = {1};", KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := classify(tt.line, 0)
			assert.Equal(t, tt.kind, st.Kind)
		})
	}

	t.Run("declaration fields", func(t *testing.T) {
		st := classify("  const byte pin = 7 ;", 3)
		require.Equal(t, KindDeclaration, st.Kind)
		assert.Equal(t, "pin", st.Decl.Name)
		assert.Equal(t, "byte", st.Decl.Keyword)
		assert.Equal(t, block.TypeInteger, st.Decl.Type)
		assert.Equal(t, "7", st.Decl.Default)
		assert.Equal(t, 3, st.Decl.Pos)
		assert.Equal(t, block.RoleVariable, st.Decl.Role)
	})

	t.Run("define is normalized", func(t *testing.T) {
		st := classify("  #define   INTERVAL   250  ", 0)
		require.Equal(t, KindDirective, st.Kind)
		assert.Equal(t, "#define INTERVAL 250", st.Raw)
	})
}

func TestRoleHint(t *testing.T) {
	tests := []struct {
		comment string
		role    block.Role
		ok      bool
	}{
		{"in", block.RoleInput, true},
		{" in ", block.RoleInput, true},
		{"IN", block.RoleInput, true},
		{"out", block.RoleOutput, true},
		{"Par", block.RoleParameter, true},
		{"input", "", false},
		{"in use elsewhere", "", false},
		{"", "", false},
		{"note", "", false},
	}
	for _, tt := range tests {
		role, ok := roleHint(tt.comment)
		assert.Equal(t, tt.ok, ok, "comment %q", tt.comment)
		if tt.ok {
			assert.Equal(t, tt.role, role, "comment %q", tt.comment)
		}
	}
}

func TestSplitComment(t *testing.T) {
	t.Run("line comment", func(t *testing.T) {
		code, comment, open := splitComment("int x = 1; // in", false)
		assert.Equal(t, "int x = 1; ", code)
		assert.Equal(t, " in", comment)
		assert.False(t, open)
	})

	t.Run("comment start inside string is kept", func(t *testing.T) {
		code, comment, open := splitComment(`String u = "http://x";`, false)
		assert.Equal(t, `String u = "http://x";`, code)
		assert.Empty(t, comment)
		assert.False(t, open)
	})

	t.Run("inline block comment", func(t *testing.T) {
		code, _, open := splitComment("int /* note */ x;", false)
		assert.Equal(t, "int   x;", code)
		assert.False(t, open)
	})

	t.Run("block comment left open", func(t *testing.T) {
		code, _, open := splitComment("int x; /* trailing", false)
		assert.Equal(t, "int x; ", code)
		assert.True(t, open)
	})

	t.Run("continues open block comment", func(t *testing.T) {
		code, _, open := splitComment("still a comment", true)
		assert.Empty(t, code)
		assert.True(t, open)

		code, _, open = splitComment("done */ int y;", true)
		assert.Equal(t, "  int y;", code)
		assert.False(t, open)
	})

	t.Run("escaped quote in string", func(t *testing.T) {
		code, comment, _ := splitComment(`char c = '\''; // par`, false)
		assert.Equal(t, `char c = '\''; `, code)
		assert.Equal(t, " par", comment)
	})
}
