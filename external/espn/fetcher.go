package espn

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
)

// fetchRefList walks every page of a core list endpoint and returns the item
// $ref links in page order. Pages after the first are fetched concurrently.
func (c *Client) fetchRefList(ctx context.Context, path string, query url.Values) ([]string, error) {
	pageQuery := func(page int) url.Values {
		values := url.Values{}
		for key, items := range query {
			values[key] = append([]string(nil), items...)
		}
		values.Set("limit", strconv.Itoa(c.pageLimit))
		values.Set("page", strconv.Itoa(page))
		return values
	}

	first, err := c.getDocument(ctx, c.coreBaseURL, path, pageQuery(1))
	if err != nil {
		return nil, fmt.Errorf("fetch %s page=1: %w", path, err)
	}

	pageCount := getInt(first, "pageCount")
	if pageCount < 1 {
		pageCount = 1
	}

	pages := make([][]string, pageCount)
	pages[0] = itemRefs(first)

	if pageCount > 1 {
		p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
		for page := 2; page <= pageCount; page++ {
			p.Go(func(ctx context.Context) error {
				doc, err := c.getDocument(ctx, c.coreBaseURL, path, pageQuery(page))
				if err != nil {
					return fmt.Errorf("fetch %s page=%d: %w", path, page, err)
				}
				pages[page-1] = itemRefs(doc)
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return nil, err
		}
	}

	total := 0
	for _, refs := range pages {
		total += len(refs)
	}
	out := make([]string, 0, total)
	for _, refs := range pages {
		out = append(out, refs...)
	}
	return out, nil
}

func itemRefs(doc map[string]any) []string {
	items := getMaps(doc, "items")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if ref := getString(item, "$ref"); ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// resolveRefs fetches every reference with at most maxConcurrency requests in
// flight. Results keep the order of refs. The first failure cancels the rest.
func (c *Client) resolveRefs(ctx context.Context, refs []string) ([]map[string]any, error) {
	if len(refs) == 0 {
		return []map[string]any{}, nil
	}

	gate, err := ants.NewPool(c.maxConcurrency)
	if err != nil {
		return nil, fmt.Errorf("create reference pool: %w", err)
	}
	defer gate.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]map[string]any, len(refs))
	var (
		workers  sync.WaitGroup
		failOnce sync.Once
		firstErr error
	)
	fail := func(err error) {
		failOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, ref := range refs {
		if ctx.Err() != nil {
			break
		}
		workers.Add(1)
		if err := gate.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}
			doc, err := c.getURL(ctx, ref, nil)
			if err != nil {
				fail(err)
				return
			}
			out[i] = doc
		}); err != nil {
			workers.Done()
			fail(fmt.Errorf("submit reference fetch: %w", err))
			break
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveList is fetchRefList followed by resolveRefs.
func (c *Client) resolveList(ctx context.Context, path string, query url.Values) ([]map[string]any, error) {
	refs, err := c.fetchRefList(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return c.resolveRefs(ctx, refs)
}
