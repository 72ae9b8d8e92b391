package template

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

func newAssembler(boilerplate bool) *SourceAssemblerAdapter {
	return NewSourceAssemblerAdapter(&config.RuntimeConfig{
		Assembler: config.AssemblerConfig{Boilerplate: boilerplate},
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "line comments",
			input:    "// header\nuint256 a; // trailing\nuint256 b;",
			expected: "uint256 a; \nuint256 b;",
		},
		{
			name:     "block comment across lines",
			input:    "uint256 a;\n/* one\n   two */\nuint256 b;",
			expected: "uint256 a;\nuint256 b;",
		},
		{
			name:     "block comments are non-greedy",
			input:    "/* a */uint256 x;/* b */",
			expected: "uint256 x;",
		},
		{
			name:     "blank line runs collapse",
			input:    "a;\n\n   \n\t\nb;",
			expected: "a;\nb;",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "\n\n   a;   \n\n",
			expected: "a;",
		},
		{
			name:     "only comments",
			input:    "// nothing\n/* here */",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestAssemble(t *testing.T) {
	components := []*domain.ComponentDefinition{
		{ID: "a", Template: "// counter\nuint256 public count;\n\nfunction inc() external {\n    count++;\n}\n"},
		{ID: "b", Template: "/* owner */\naddress public owner;"},
	}

	t.Run("with boilerplate", func(t *testing.T) {
		expected := `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.19;

contract GeneratedContract {
    uint256 public count;
    function inc() external {
        count++;
    }

    address public owner;

    constructor() {}

    receive() external payable {}

    fallback() external payable {}
}`
		got := newAssembler(true).Assemble(components)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("without boilerplate", func(t *testing.T) {
		expected := `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.19;

contract GeneratedContract {
    uint256 public count;
    function inc() external {
        count++;
    }

    address public owner;
}`
		got := newAssembler(false).Assemble(components)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty selection is still a complete contract", func(t *testing.T) {
		expected := `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.19;

contract GeneratedContract {
    constructor() {}

    receive() external payable {}

    fallback() external payable {}
}`
		assert.Equal(t, expected, newAssembler(true).Assemble(nil))
		assert.Equal(t, "// SPDX-License-Identifier: MIT\npragma solidity ^0.8.19;\n\ncontract GeneratedContract {\n}",
			newAssembler(false).Assemble(nil))
	})

	t.Run("order follows the selection", func(t *testing.T) {
		forward := newAssembler(true).Assemble(components)
		reversed := newAssembler(true).Assemble([]*domain.ComponentDefinition{components[1], components[0]})
		assert.Less(t, strings.Index(forward, "count"), strings.Index(forward, "owner"))
		assert.Greater(t, strings.Index(reversed, "count"), strings.Index(reversed, "owner"))
	})

	t.Run("duplicates appear twice", func(t *testing.T) {
		got := newAssembler(true).Assemble([]*domain.ComponentDefinition{components[1], components[1]})
		assert.Equal(t, 2, strings.Count(got, "address public owner;"))
	})
}

func TestAssembleUsesConfiguredWrapper(t *testing.T) {
	a := NewSourceAssemblerAdapter(&config.RuntimeConfig{
		Assembler: config.AssemblerConfig{
			ContractName: "Token",
			Pragma:       "0.8.24",
			License:      "Apache-2.0",
		},
	})

	got := a.Assemble(nil)
	assert.True(t, strings.HasPrefix(got, "// SPDX-License-Identifier: Apache-2.0\npragma solidity 0.8.24;\n\ncontract Token {"))
}

func TestAssembleStripsComments(t *testing.T) {
	a := newAssembler(true)
	got := a.Assemble([]*domain.ComponentDefinition{
		{Template: "// Meta Transaction Handler\nmapping(address => uint256) public nonces;\n// Verify signature"},
	})
	assert.Equal(t, 1, strings.Count(got, "//"))
}
