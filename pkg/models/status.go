// Copyright (C) 2026 Ioannis Torakis <john.torakis@gmail.com>
// SPDX-License-Identifier: Elastic-2.0
//
// Licensed under the Elastic License 2.0.
// You may obtain a copy of the license at:
// https://www.elastic.co/licensing/elastic-license
//
// Use, modification, and redistribution permitted under the terms of the license,
// except for providing this software as a commercial service or product.

package models

import "strings"

// StatusClass buckets the free-form status strings served by the API into the
// four presentation classes the dashboard renders.
type StatusClass string

const (
	StatusPending  StatusClass = "pending"
	StatusApproved StatusClass = "approved"
	StatusRejected StatusClass = "rejected"
	StatusOther    StatusClass = "other"
)

// Wire values the API is known to emit. The backend speaks Spanish; English
// synonyms are accepted because status is an open string set.
const (
	WireStatusPending  = "pendiente"
	WireStatusApproved = "aprobado"
	WireStatusRejected = "rechazado"
)

// ClassifyStatus maps a raw status string to its presentation class.
// Matching is case-insensitive and tolerates surrounding whitespace;
// unrecognized values fall into StatusOther rather than erroring.
func ClassifyStatus(raw string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case WireStatusPending, "pending":
		return StatusPending
	case WireStatusApproved, "approved":
		return StatusApproved
	case WireStatusRejected, "rejected":
		return StatusRejected
	default:
		return StatusOther
	}
}

// IsApproved reports whether a raw status string passes the approved-only
// filter used for person selectors.
func IsApproved(raw string) bool {
	return ClassifyStatus(raw) == StatusApproved
}
