package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/idioms/internal/deck"
)

func writeDeckToml(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, deck.FileName), []byte(body), 0644))
	return dir
}

func TestValidate_FrenchDeckIsValid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, deck.WriteDeck(dir, deck.FrenchConfig()))

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidate_MissingDeckToml(t *testing.T) {
	_, err := NewValidator(t.TempDir()).Validate()
	assert.ErrorContains(t, err, "deck.toml not found")
}

func TestValidate_Unparsable(t *testing.T) {
	dir := writeDeckToml(t, "[deck\n")
	_, err := NewValidator(dir).Validate()
	assert.ErrorContains(t, err, "error parsing deck.toml")
}

func TestValidate_CollectsErrors(t *testing.T) {
	dir := writeDeckToml(t, `
ranks = ["A", "K", "A", " "]
suits = ["cups", "coins"]

[deck]
name = "Broken"
schema_version = "2.0"

[suit_values]
cups = 1
moons = 1
`)

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"deck.id is required in deck.toml",
		"deck.version is required in deck.toml",
		"unsupported schema_version: 2.0 (supported: 1.0)",
		"ranks[3] is blank",
		"duplicate ranks: A",
		"suit_values.coins is required",
	}, results.Errors)

	assert.ElementsMatch(t, []string{
		"deck.description is empty",
		"suit_values.moons does not match any suit",
		"suits cups, moons share value 1 and will sort unpredictably",
	}, results.Warnings)
}

func TestValidate_EmptyLists(t *testing.T) {
	dir := writeDeckToml(t, `
[deck]
id = "empty"
name = "Empty"
version = "0.1"
schema_version = "1.0"
description = "nothing here"
`)

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ranks must list at least one entry",
		"suits must list at least one entry",
	}, results.Errors)
}
