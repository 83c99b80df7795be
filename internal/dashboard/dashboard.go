// Copyright (C) 2026 Ioannis Torakis <john.torakis@gmail.com>
// SPDX-License-Identifier: Elastic-2.0
//
// Licensed under the Elastic License 2.0.
// You may obtain a copy of the license at:
// https://www.elastic.co/licensing/elastic-license
//
// Use, modification, and redistribution permitted under the terms of the license,
// except for providing this software as a commercial service or product.

// Package dashboard merges the three request collections served by the
// personnel API into one uniform action table. Each source is fetched
// independently; a failure in one never blocks or discards the others.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/teamops-io/personnel-cli/pkg/models"
)

// Fetcher is the read surface the view needs from the API client.
type Fetcher interface {
	ListPeople(ctx context.Context) ([]models.Person, error)
	ListAccessRequests(ctx context.Context) ([]models.AccessRequest, error)
	ListAssignments(ctx context.Context) ([]models.ComputerAssignment, error)
}

// Deleter is the write surface used by row deletion.
type Deleter interface {
	DeletePerson(ctx context.Context, id models.ID) (string, error)
	DeleteAccessRequest(ctx context.Context, id models.ID) (string, error)
	DeleteAssignment(ctx context.Context, id models.ID) (string, error)
}

// View holds the aggregated dashboard state. Each source owns its own row
// slice; the shared error keeps only the first failure.
type View struct {
	mu          sync.Mutex
	people      []models.DashboardRow
	access      []models.DashboardRow
	assignments []models.DashboardRow
	errMsg      string
	dropped     int
}

// Load runs the three source fetches concurrently and normalizes every
// successful load into the common row shape. Completions may interleave in
// any order; each goroutine writes only its own slot.
func Load(ctx context.Context, client Fetcher) *View {
	v := &View{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		people, err := client.ListPeople(ctx)
		if err != nil {
			v.setErr("could not load user creation requests: " + err.Error())
			return
		}
		rows := make([]models.DashboardRow, 0, len(people))
		for _, p := range people {
			rows = append(rows, models.RowFromPerson(p))
		}
		v.setPeople(v.keepIdentified(rows))
	}()

	go func() {
		defer wg.Done()
		requests, err := client.ListAccessRequests(ctx)
		if err != nil {
			v.setErr("could not load access requests: " + err.Error())
			return
		}
		rows := make([]models.DashboardRow, 0, len(requests))
		for _, r := range requests {
			rows = append(rows, models.RowFromAccessRequest(r))
		}
		v.setAccess(v.keepIdentified(rows))
	}()

	go func() {
		defer wg.Done()
		assignments, err := client.ListAssignments(ctx)
		if err != nil {
			v.setErr("could not load computer assignments: " + err.Error())
			return
		}
		rows := make([]models.DashboardRow, 0, len(assignments))
		for _, a := range assignments {
			rows = append(rows, models.RowFromAssignment(a))
		}
		v.setAssignments(v.keepIdentified(rows))
	}()

	wg.Wait()
	return v
}

// keepIdentified drops rows missing an id; they must never render. Drops are
// counted so the caller can report them.
func (v *View) keepIdentified(rows []models.DashboardRow) []models.DashboardRow {
	kept := rows[:0]
	for _, row := range rows {
		if row.ID.IsZero() {
			v.mu.Lock()
			v.dropped++
			v.mu.Unlock()
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// setErr records a source failure. First failure wins; later failures do not
// overwrite an already-set message.
func (v *View) setErr(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.errMsg == "" {
		v.errMsg = msg
	}
}

func (v *View) setPeople(rows []models.DashboardRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.people = rows
}

func (v *View) setAccess(rows []models.DashboardRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.access = rows
}

func (v *View) setAssignments(rows []models.DashboardRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.assignments = rows
}

// Rows returns the aggregated table: person-creation rows first, then access
// requests, then assignments. No interleaving or global sort.
func (v *View) Rows() []models.DashboardRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := make([]models.DashboardRow, 0, len(v.people)+len(v.access)+len(v.assignments))
	rows = append(rows, v.people...)
	rows = append(rows, v.access...)
	rows = append(rows, v.assignments...)
	return rows
}

// Err returns the shared error message, empty when every source loaded.
func (v *View) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Dropped returns how many rows were discarded for missing ids.
func (v *View) Dropped() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dropped
}

// ShowErrorBanner reports whether the error takes over the table. Partial
// data always renders; the banner replaces the table only when every source
// came back empty.
func (v *View) ShowErrorBanner() bool {
	return v.Err() != "" && len(v.Rows()) == 0
}

// Find looks up a row by origin kind and id.
func (v *View) Find(kind models.RowKind, id models.ID) (models.DashboardRow, bool) {
	for _, row := range v.Rows() {
		if row.Kind == kind && row.ID == id {
			return row, true
		}
	}
	return models.DashboardRow{}, false
}

// Delete issues the kind-specific delete call and, only on server
// acknowledgment, removes the row from local state. A failed call leaves the
// view untouched.
func (v *View) Delete(ctx context.Context, client Deleter, kind models.RowKind, id models.ID) (string, error) {
	if _, ok := v.Find(kind, id); !ok {
		return "", fmt.Errorf("no %s row with id %s", kind, id)
	}

	var (
		message string
		err     error
	)
	switch kind {
	case models.KindPersonCreation:
		message, err = client.DeletePerson(ctx, id)
	case models.KindAccessRequest:
		message, err = client.DeleteAccessRequest(ctx, id)
	case models.KindAssignment:
		message, err = client.DeleteAssignment(ctx, id)
	default:
		return "", fmt.Errorf("unknown row kind: %s", kind)
	}
	if err != nil {
		return "", err
	}

	v.remove(kind, id)
	return message, nil
}

func (v *View) remove(kind models.RowKind, id models.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	filter := func(rows []models.DashboardRow) []models.DashboardRow {
		kept := rows[:0]
		for _, row := range rows {
			if row.ID != id {
				kept = append(kept, row)
			}
		}
		return kept
	}

	switch kind {
	case models.KindPersonCreation:
		v.people = filter(v.people)
	case models.KindAccessRequest:
		v.access = filter(v.access)
	case models.KindAssignment:
		v.assignments = filter(v.assignments)
	}
}

// EditCommand returns the kind-routed edit destination for a row, expressed
// as the follow-up command to run.
func EditCommand(kind models.RowKind, id models.ID) string {
	switch kind {
	case models.KindAccessRequest:
		return fmt.Sprintf("teamops access edit %s", id)
	case models.KindAssignment:
		return fmt.Sprintf("teamops assign edit %s", id)
	default:
		return fmt.Sprintf("teamops people edit %s", id)
	}
}
