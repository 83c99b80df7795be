package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/teamops-io/personnel-cli/pkg/models"
)

// ListAssignments fetches the computer-assignment collection.
func (c *Client) ListAssignments(ctx context.Context) ([]models.ComputerAssignment, error) {
	body, err := c.get(ctx, BasePath+"/get-assignments")
	if err != nil {
		return nil, errors.WrapAPIError("list assignments", "get-assignments", err)
	}
	assignments, err := decodeCollection[models.ComputerAssignment](body)
	if err != nil {
		return nil, errors.WrapAPIError("list assignments", "get-assignments", err)
	}
	return assignments, nil
}

// GetAssignment fetches a single computer assignment by id.
func (c *Client) GetAssignment(ctx context.Context, id models.ID) (models.ComputerAssignment, error) {
	path := fmt.Sprintf("%s/get-assignment-by-id/%s", BasePath, id)
	body, err := c.get(ctx, path)
	if err != nil {
		return models.ComputerAssignment{}, errors.WrapAPIError("get assignment", "get-assignment-by-id", err)
	}
	assignment, err := decodeRecord[models.ComputerAssignment](body)
	if err != nil {
		return models.ComputerAssignment{}, errors.WrapAPIError("get assignment", "get-assignment-by-id",
			fmt.Errorf("%w: %v", errors.ErrAssignmentNotFound, err))
	}
	return assignment, nil
}

// ListComputers fetches the available-computers listing used to cross-check
// serial numbers when creating assignments.
func (c *Client) ListComputers(ctx context.Context) ([]models.Computer, error) {
	body, err := c.get(ctx, BasePath+"/get-computers")
	if err != nil {
		return nil, errors.WrapAPIError("list computers", "get-computers", err)
	}
	computers, err := decodeCollection[models.Computer](body)
	if err != nil {
		return nil, errors.WrapAPIError("list computers", "get-computers", err)
	}
	return computers, nil
}

// CreateAssignment links a person to a computer.
func (c *Client) CreateAssignment(ctx context.Context, in models.CreateAssignmentInput) (string, error) {
	msg, err := c.write(ctx, http.MethodPost, BasePath+"/create-assignment", in)
	if err != nil {
		return "", errors.WrapAPIError("create assignment", "create-assignment", err)
	}
	return msg, nil
}

// UpdateAssignment updates an existing computer assignment.
func (c *Client) UpdateAssignment(ctx context.Context, id models.ID, in models.UpdateAssignmentInput) (string, error) {
	path := fmt.Sprintf("%s/update-assignment/%s", BasePath, id)
	msg, err := c.write(ctx, http.MethodPut, path, in)
	if err != nil {
		return "", errors.WrapAPIError("update assignment", "update-assignment", err)
	}
	return msg, nil
}

// DeleteAssignment removes a computer assignment.
func (c *Client) DeleteAssignment(ctx context.Context, id models.ID) (string, error) {
	path := fmt.Sprintf("%s/delete-assignment/%s", BasePath, id)
	msg, err := c.write(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return "", errors.WrapAPIError("delete assignment", "delete-assignment", err)
	}
	return msg, nil
}
