package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/teamops-io/personnel-cli/pkg/models"
)

// ListPeople fetches the full person collection. The endpoint answers with a
// bare array.
func (c *Client) ListPeople(ctx context.Context) ([]models.Person, error) {
	body, err := c.get(ctx, BasePath+"/get-users")
	if err != nil {
		return nil, errors.WrapAPIError("list people", "get-users", err)
	}
	people, err := decodeCollection[models.Person](body)
	if err != nil {
		return nil, errors.WrapAPIError("list people", "get-users", err)
	}
	return people, nil
}

// ListApprovedPeople returns the derived approved-only view used by person
// selectors.
func (c *Client) ListApprovedPeople(ctx context.Context) ([]models.Person, error) {
	people, err := c.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	return models.ApprovedOnly(people), nil
}

// GetPersonByID fetches the person collection and scans for the given id.
// There is no get-user-by-id endpoint on this API.
func (c *Client) GetPersonByID(ctx context.Context, id models.ID) (models.Person, error) {
	people, err := c.ListPeople(ctx)
	if err != nil {
		return models.Person{}, err
	}
	person, ok := models.FindPersonByID(people, id)
	if !ok {
		return models.Person{}, errors.WrapAPIError("get person", "get-users",
			fmt.Errorf("%w: id %s", errors.ErrPersonNotFound, id))
	}
	return person, nil
}

// CreatePerson registers a new team member and returns the server's
// confirmation message.
func (c *Client) CreatePerson(ctx context.Context, in models.CreatePersonInput) (string, error) {
	msg, err := c.write(ctx, http.MethodPost, BasePath+"/create-user", in)
	if err != nil {
		return "", errors.WrapAPIError("create person", "create-user", err)
	}
	return msg, nil
}

// UpdatePerson updates an existing team member record.
func (c *Client) UpdatePerson(ctx context.Context, id models.ID, in models.UpdatePersonInput) (string, error) {
	path := fmt.Sprintf("%s/update-user/%s", BasePath, id)
	msg, err := c.write(ctx, http.MethodPut, path, in)
	if err != nil {
		return "", errors.WrapAPIError("update person", "update-user", err)
	}
	return msg, nil
}

// DeletePerson removes a team member record.
func (c *Client) DeletePerson(ctx context.Context, id models.ID) (string, error) {
	path := fmt.Sprintf("%s/delete-user/%s", BasePath, id)
	msg, err := c.write(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return "", errors.WrapAPIError("delete person", "delete-user", err)
	}
	return msg, nil
}
