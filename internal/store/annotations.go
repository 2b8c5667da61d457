package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Type identifiers for the inline annotation records the store keeps in
// its side tables.
const (
	utiHashtag = "com.apple.notes.inlinetextattachment.hashtag"
	utiMention = "com.apple.notes.inlinetextattachment.mention"
	utiLink    = "com.apple.notes.inlinetextattachment.link"
)

// Structured annotation side tables first appear in this generation.
const annotationMinVersion = 15

// AnnotationReader queries the version-specific annotation side tables.
// Older stores have no side tables; every method then returns empty
// results, never an error — plain-text extraction remains the only
// signal there.
type AnnotationReader struct {
	db      *sql.DB
	version int
}

// NoteAnnotations is the authoritative annotation set for one note.
type NoteAnnotations struct {
	Hashtags []string
	Mentions []string
	Links    []string
}

// Supported reports whether this store generation records annotations in
// side tables at all.
func (r *AnnotationReader) Supported() bool {
	return r.version >= annotationMinVersion
}

// ForNote returns the side-table annotations owned by a note. An
// annotation row points at its note through any of three foreign-key
// slots; all three are treated as equivalent owning-note pointers.
func (r *AnnotationReader) ForNote(ctx context.Context, noteID int64) (NoteAnnotations, error) {
	var result NoteAnnotations
	if !r.Supported() {
		return result, nil
	}

	query := `
	SELECT obj.ZTYPEUTI1, obj.ZALTTEXT, obj.ZTOKENCONTENTIDENTIFIER
	FROM ZICCLOUDSYNCINGOBJECT obj
	WHERE (obj.ZNOTE = ? OR obj.ZNOTE1 = ? OR obj.ZATTACHMENT = ?)
		AND obj.ZTYPEUTI1 IN (?, ?, ?)`

	rows, err := r.db.QueryContext(ctx, query,
		noteID, noteID, noteID, utiHashtag, utiMention, utiLink)
	if err != nil {
		return result, fmt.Errorf("%w: annotations for note %d: %v", ErrQuery, noteID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			uti             sql.NullString
			altText         sql.NullString
			tokenIdentifier sql.NullString
		)
		if err := rows.Scan(&uti, &altText, &tokenIdentifier); err != nil {
			return result, fmt.Errorf("%w: annotations for note %d: %v", ErrQuery, noteID, err)
		}

		switch uti.String {
		case utiHashtag:
			if tag := stripSigil(altText.String, "#"); tag != "" {
				result.Hashtags = append(result.Hashtags, tag)
			}
		case utiMention:
			if mention := stripSigil(altText.String, "@"); mention != "" {
				result.Mentions = append(result.Mentions, mention)
			}
		case utiLink:
			link := altText.String
			if link == "" {
				link = tokenIdentifier.String
			}
			if isHTTPLink(link) {
				result.Links = append(result.Links, link)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("%w: annotations for note %d: %v", ErrQuery, noteID, err)
	}

	result.Hashtags = dedupe(result.Hashtags)
	result.Mentions = dedupe(result.Mentions)
	result.Links = dedupe(result.Links)
	return result, nil
}

// AllHashtags returns every distinct hashtag in the store, sorted by tag
// text for determinism.
func (r *AnnotationReader) AllHashtags(ctx context.Context) ([]string, error) {
	return r.allAnnotationText(ctx, utiHashtag, "#")
}

// AllMentions returns every distinct mention in the store, sorted.
func (r *AnnotationReader) AllMentions(ctx context.Context) ([]string, error) {
	return r.allAnnotationText(ctx, utiMention, "@")
}

func (r *AnnotationReader) allAnnotationText(ctx context.Context, uti, sigil string) ([]string, error) {
	if !r.Supported() {
		return nil, nil
	}

	query := `
	SELECT DISTINCT ZALTTEXT
	FROM ZICCLOUDSYNCINGOBJECT
	WHERE ZTYPEUTI1 = ? AND ZALTTEXT IS NOT NULL`

	rows, err := r.db.QueryContext(ctx, query, uti)
	if err != nil {
		return nil, fmt.Errorf("%w: annotation text: %v", ErrQuery, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var altText sql.NullString
		if err := rows.Scan(&altText); err != nil {
			return nil, fmt.Errorf("%w: annotation text: %v", ErrQuery, err)
		}
		if v := stripSigil(altText.String, sigil); v != "" {
			values = append(values, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: annotation text: %v", ErrQuery, err)
	}

	values = dedupe(values)
	sort.Strings(values)
	return values, nil
}

// NotesWithHashtag returns the logical note ids carrying a hashtag.
// The stored text may or may not include the sigil, so both forms match.
func (r *AnnotationReader) NotesWithHashtag(ctx context.Context, hashtag string) ([]int64, error) {
	if !r.Supported() {
		return nil, nil
	}

	query := `
	SELECT DISTINCT COALESCE(ZNOTE, ZNOTE1, ZATTACHMENT)
	FROM ZICCLOUDSYNCINGOBJECT
	WHERE ZTYPEUTI1 = ?
		AND ZALTTEXT IN (?, ?)
		AND (ZNOTE IS NOT NULL OR ZNOTE1 IS NOT NULL OR ZATTACHMENT IS NOT NULL)`

	rows, err := r.db.QueryContext(ctx, query, utiHashtag, hashtag, "#"+hashtag)
	if err != nil {
		return nil, fmt.Errorf("%w: notes with hashtag %q: %v", ErrQuery, hashtag, err)
	}
	defer rows.Close()

	var noteIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: notes with hashtag %q: %v", ErrQuery, hashtag, err)
		}
		noteIDs = append(noteIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: notes with hashtag %q: %v", ErrQuery, hashtag, err)
	}
	return noteIDs, nil
}

// HashtagCounts returns, per hashtag, the number of distinct notes that
// carry it, keyed by tag text with the sigil stripped.
func (r *AnnotationReader) HashtagCounts(ctx context.Context) (map[string]int, error) {
	if !r.Supported() {
		return nil, nil
	}

	query := `
	SELECT ZALTTEXT, COUNT(DISTINCT COALESCE(ZNOTE, ZNOTE1, ZATTACHMENT))
	FROM ZICCLOUDSYNCINGOBJECT
	WHERE ZTYPEUTI1 = ?
		AND ZALTTEXT IS NOT NULL
		AND (ZNOTE IS NOT NULL OR ZNOTE1 IS NOT NULL OR ZATTACHMENT IS NOT NULL)
	GROUP BY ZALTTEXT
	ORDER BY ZALTTEXT`

	rows, err := r.db.QueryContext(ctx, query, utiHashtag)
	if err != nil {
		return nil, fmt.Errorf("%w: hashtag counts: %v", ErrQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			altText sql.NullString
			count   int
		)
		if err := rows.Scan(&altText, &count); err != nil {
			return nil, fmt.Errorf("%w: hashtag counts: %v", ErrQuery, err)
		}
		if tag := stripSigil(altText.String, "#"); tag != "" {
			counts[tag] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: hashtag counts: %v", ErrQuery, err)
	}
	return counts, nil
}

// stripSigil removes exactly one leading sigil character. Records that
// are nothing but the sigil collapse to "" and are discarded by callers.
func stripSigil(text, sigil string) string {
	return strings.TrimPrefix(text, sigil)
}

func isHTTPLink(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

// dedupe removes exact duplicates, keeping first-seen order.
func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
