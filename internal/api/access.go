package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamops-io/personnel-cli/pkg/errors"
	"github.com/teamops-io/personnel-cli/pkg/models"
)

// ListAccessRequests fetches the access-request collection. The endpoint
// answers with a {success, data} envelope.
func (c *Client) ListAccessRequests(ctx context.Context) ([]models.AccessRequest, error) {
	body, err := c.get(ctx, BasePath+"/get-access-requests")
	if err != nil {
		return nil, errors.WrapAPIError("list access requests", "get-access-requests", err)
	}
	requests, err := decodeCollection[models.AccessRequest](body)
	if err != nil {
		return nil, errors.WrapAPIError("list access requests", "get-access-requests", err)
	}
	return requests, nil
}

// GetAccessRequest fetches a single access request by id.
func (c *Client) GetAccessRequest(ctx context.Context, id models.ID) (models.AccessRequest, error) {
	path := fmt.Sprintf("%s/get-access-request-by-id/%s", BasePath, id)
	body, err := c.get(ctx, path)
	if err != nil {
		return models.AccessRequest{}, errors.WrapAPIError("get access request", "get-access-request-by-id", err)
	}
	req, err := decodeRecord[models.AccessRequest](body)
	if err != nil {
		return models.AccessRequest{}, errors.WrapAPIError("get access request", "get-access-request-by-id",
			fmt.Errorf("%w: %v", errors.ErrRequestNotFound, err))
	}
	return req, nil
}

// CreateAccessRequest submits a new access request.
func (c *Client) CreateAccessRequest(ctx context.Context, in models.CreateAccessRequestInput) (string, error) {
	msg, err := c.write(ctx, http.MethodPost, BasePath+"/create-access-request", in)
	if err != nil {
		return "", errors.WrapAPIError("create access request", "create-access-request", err)
	}
	return msg, nil
}

// UpdateAccessRequest updates an existing access request.
func (c *Client) UpdateAccessRequest(ctx context.Context, id models.ID, in models.UpdateAccessRequestInput) (string, error) {
	path := fmt.Sprintf("%s/update-access-request/%s", BasePath, id)
	msg, err := c.write(ctx, http.MethodPut, path, in)
	if err != nil {
		return "", errors.WrapAPIError("update access request", "update-access-request", err)
	}
	return msg, nil
}

// DeleteAccessRequest removes an access request.
func (c *Client) DeleteAccessRequest(ctx context.Context, id models.ID) (string, error) {
	path := fmt.Sprintf("%s/delete-access-request/%s", BasePath, id)
	msg, err := c.write(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return "", errors.WrapAPIError("delete access request", "delete-access-request", err)
	}
	return msg, nil
}
