package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessContainsPrefixAndMessage(t *testing.T) {
	result := Success("done")
	assert.Contains(t, result, "✓")
	assert.Contains(t, result, "done")
}

func TestWarnContainsPrefixAndMessage(t *testing.T) {
	result := Warn("careful")
	assert.Contains(t, result, "⚠")
	assert.Contains(t, result, "careful")
}

func TestErrContainsPrefixAndMessage(t *testing.T) {
	result := Err("reverted")
	assert.Contains(t, result, "✗")
	assert.Contains(t, result, "reverted")
}

func TestInfoContainsMessage(t *testing.T) {
	result := Info("waiting for receipt")
	assert.Contains(t, result, "›")
	assert.Contains(t, result, "waiting for receipt")
}

func TestFormattersKeepText(t *testing.T) {
	assert.Contains(t, Addr("0xabc"), "0xabc")
	assert.Contains(t, Val("1.5"), "1.5")
	assert.Contains(t, Meta("block 3"), "block 3")
	assert.Contains(t, Network("devnet"), "devnet")
}

func TestTruncateAddr(t *testing.T) {
	assert.Equal(t, "0x12", TruncateAddr("0x12"))
	assert.Equal(t, "0x12345678", TruncateAddr("0x12345678"))
	assert.Equal(t, "0xf39F…2266", TruncateAddr("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	assert.Equal(t, "", TruncateAddr(""))
}
