// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/recipeshelf/recipe-shelf/models"
)

const (
	createAccount = `INSERT INTO accounts (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, password_hash, created_at;`

	findAccountByIdentity = `SELECT id, username, email, password_hash, created_at
	FROM accounts
	WHERE username = $1 OR email = $1;`

	deleteAccount = `DELETE FROM accounts
	WHERE id = $1;`

	createRecipe = `INSERT INTO recipes (
			id,
			owner_id,
			owner_name,
			title,
			description,
			ingredients,
			instructions
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, owner_name, title, description, ingredients, instructions, created_at, updated_at;`

	getRecipeByID = `SELECT
			id,
			owner_id,
			owner_name,
			title,
			description,
			ingredients,
			instructions,
			created_at,
			updated_at
		FROM recipes
		WHERE id = $1;`

	getAllRecipes = `SELECT
			id,
			owner_id,
			owner_name,
			title,
			description,
			ingredients,
			instructions,
			created_at,
			updated_at
		FROM recipes
		ORDER BY created_at DESC;`

	deleteRecipe = `DELETE FROM recipes
	WHERE id = $1 AND owner_id = $2;`

	deleteRecipesByOwner = `DELETE FROM recipes
	WHERE owner_id = $1;`
)

// recipeColumns is the canonical column order shared by every recipe query
// and by scanRecipe.
const recipeColumns = "id, owner_id, owner_name, title, description, ingredients, instructions, created_at, updated_at"

// buildUpdateRecipeQuery builds an UPDATE statement that applies only the
// fields set in update, always bumps updated_at, filters by {id, owner_id},
// and returns the full updated row via RETURNING.
//
// Returns [ErrBuildingSQLQuery] when update carries no changes or when the
// ingredients payload cannot be serialized.
func buildUpdateRecipeQuery(update models.RecipeUpdate) (string, []any, error) {
	if !update.HasChanges() {
		return "", nil, fmt.Errorf("%w: no updatable fields set", ErrBuildingSQLQuery)
	}

	builder := sq.Update("recipes").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Ingredients != nil {
		raw, err := json.Marshal(*update.Ingredients)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Set("ingredients", raw)
	}
	if update.Instructions != nil {
		builder = builder.Set("instructions", *update.Instructions)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID, "owner_id": update.OwnerID}).
		Suffix("RETURNING " + recipeColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
