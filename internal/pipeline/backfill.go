package pipeline

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/taylored-ai/brand-dna-service/internal/model"
	"github.com/taylored-ai/brand-dna-service/pkg/perplexity"
)

var (
	instagramProfileRe = regexp.MustCompile(`(?i)https?://(?:www\.)?instagram\.com/[A-Za-z0-9._]+`)
	facebookProfileRe  = regexp.MustCompile(`(?i)https?://(?:www\.)?facebook\.com/[A-Za-z0-9.\-]+`)
)

// backfillSocialLinks runs the conditional second-pass search for social
// links still missing after synthesis. Any failure here is logged and
// swallowed; the profile keeps whatever was resolved before the attempt.
func backfillSocialLinks(ctx context.Context, search perplexity.Client, maxResults int, profile *model.BrandProfile, sources *model.SourceSet) {
	needInstagram := strings.TrimSpace(profile.Links.Instagram) == ""
	needFacebook := strings.TrimSpace(profile.Links.Facebook) == ""
	if !needInstagram && !needFacebook {
		return
	}
	if search == nil {
		zap.L().Debug("backfill: no search client configured, skipping")
		return
	}

	query := strings.TrimSpace(profile.BusinessName + " " + profile.Contact.Address + " Instagram Facebook")
	resp, err := search.Search(ctx, perplexity.SearchRequest{
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		zap.L().Warn("backfill: search failed", zap.String("query", query), zap.Error(err))
		return
	}

	inspected := scanSearchResults(resp.Results, profile, sources)
	zap.L().Debug("backfill: scanned search results",
		zap.Int("inspected", inspected),
		zap.Int("available", len(resp.Results)),
	)
}

// scanSearchResults walks results in order, regex-matching a profile URL per
// still-missing platform. The first match per platform wins; the scan stops
// as soon as both platforms are resolved. Returns how many results were
// inspected.
func scanSearchResults(results []perplexity.SearchResult, profile *model.BrandProfile, sources *model.SourceSet) int {
	needInstagram := strings.TrimSpace(profile.Links.Instagram) == ""
	needFacebook := strings.TrimSpace(profile.Links.Facebook) == ""

	inspected := 0
	for _, r := range results {
		if !needInstagram && !needFacebook {
			break
		}
		inspected++
		text := r.Text()

		if needInstagram {
			if m := instagramProfileRe.FindString(text); m != "" {
				profile.Links.Instagram = m
				sources.Add(model.SourceSearchInstagram)
				needInstagram = false
			}
		}
		if needFacebook {
			if m := facebookProfileRe.FindString(text); m != "" {
				profile.Links.Facebook = m
				sources.Add(model.SourceSearchFacebook)
				needFacebook = false
			}
		}
	}
	return inspected
}
