package packing

// Summary is the numeric aggregate displayed next to the recommendations.
type Summary struct {
	Min  int
	Max  int
	Rain bool
}

// Advisory is the derived packing recommendation for a whole trip: a
// deduplicated tag set (stable order) plus the weather summary it came from.
type Advisory struct {
	Tags    []string
	Summary Summary
}

var (
	rainTags = []string{"☔ 折疊傘/雨衣", "👞 防水噴霧"}
	coldTags = []string{"🧣 圍巾", "🧥 保暖外套", "🧤 手套"}
	mildTags = []string{"🧥 薄外套"}
	sunTags  = []string{"🕶️ 太陽眼鏡", "🧢 帽子", "🧴 防曬"}
)

// recommend applies the ordered rule table to the folded aggregates. The cold
// rule supersedes the mild one: a trip never carries both a warm coat and the
// light jacket tag.
func recommend(summary Summary) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(group []string) {
		for _, tag := range group {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	if summary.Rain {
		add(rainTags)
	}
	if summary.Min < 12 {
		add(coldTags)
	} else if summary.Min < 20 {
		add(mildTags)
	}
	if summary.Max > 28 {
		add(sunTags)
	}
	return tags
}
