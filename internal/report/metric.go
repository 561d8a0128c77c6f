package report

import (
	"regexp"
	"strings"

	"github.com/salmonumbrella/csv2html-cli/internal/table"
)

// Raw accuracy cells arrive as free-form strings like
// "Top1 76.13", "mAP 37.4", "mAP@0.5 57.9",
// "Val AP (Easy 95.44 / Medium 93.95 / Hard 85.66)", or
// "Avg PSNR: 31.709 / Avg SSIM: 0.8905". DeriveMetrics classifies each
// into a Metric label and reduces the cell to the bare numbers.

var (
	top1RE  = regexp.MustCompile(`(?i)\bTop-?1\b[^0-9+-]*([-+]?\d+(?:\.\d+)?)`)
	map50RE = regexp.MustCompile(`(?i)\bmAP\s*@?\s*(?:0?\.5|50)\b\s*[:=]?\s*([-+]?\d+(?:\.\d+)?)`)
	mapRE   = regexp.MustCompile(`(?i)\bmAP\b\s*[:=]?\s*([-+]?\d+(?:\.\d+)?)`)
	numRE   = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

	apPreambleRE = regexp.MustCompile(`(?i)\b(?:Val\s*)?AP\b`)
	apPairRE     = regexp.MustCompile(`(?i)\b(Easy|Medium|Hard)\b\s*[:=]?\s*([-+]?\d+(?:\.\d+)?)`)
	apFuncRE     = regexp.MustCompile(`(?i)AP\((Easy|Medium|Hard)\)\s*[:=]?\s*([-+]?\d+(?:\.\d+)?)`)

	psnrRE = regexp.MustCompile(`(?i)\b(?:Avg\s*)?PSNR\b[^0-9+-]*([-+]?\d+(?:\.\d+)?)`)
	ssimRE = regexp.MustCompile(`(?i)\b(?:Avg\s*)?SSIM\b[^0-9+-]*([-+]?\d+(?:\.\d+)?)`)
)

// MetricType classifies a raw accuracy string into the report's Metric
// column value.
func MetricType(value string) string {
	s := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(s, "Top1"):
		return "Top1"
	case strings.HasPrefix(s, "mAP"):
		if strings.Contains(s, "50") || strings.Contains(s, "0.5") {
			return "mAP50"
		}
		return "mAP"
	case strings.HasPrefix(s, "mIoU"):
		return "mIoU"
	case strings.HasPrefix(s, "Avg PSNR"), strings.HasPrefix(s, "PSNR"), strings.Contains(s, "SSIM"):
		return "PSNR/SSIM"
	case strings.HasPrefix(s, "Val AP"), strings.HasPrefix(s, "AP"):
		return "AP(Easy/Med/Hard)"
	}
	return ""
}

// MetricDetail returns the finer-grained label when the raw string names
// a specific AP split or mAP threshold.
func MetricDetail(value string) string {
	s := strings.TrimSpace(value)
	switch {
	case strings.Contains(s, "AP(Easy)"):
		return "AP(Easy)"
	case strings.Contains(s, "AP(Medium)"):
		return "AP(Medium)"
	case strings.Contains(s, "AP(Hard)"):
		return "AP(Hard)"
	case strings.HasPrefix(s, "Top1"):
		return "Top1"
	case strings.HasPrefix(s, "mAP@0.5"), strings.Contains(s, "mAP50"):
		return "mAP@0.5"
	case strings.HasPrefix(s, "mAP"):
		return "mAP"
	case strings.HasPrefix(s, "Avg PSNR"), strings.HasPrefix(s, "PSNR"), strings.Contains(s, "SSIM"):
		return "PSNR/SSIM"
	case strings.HasPrefix(s, "Val AP"), strings.HasPrefix(s, "AP"):
		return "AP"
	}
	return ""
}

// extractPrimaryAccuracy pulls the single display number out of a raw
// accuracy string. Priority: Top1, then base mAP, then thresholded mAP,
// then the first number anywhere.
func extractPrimaryAccuracy(value string) string {
	s := strings.TrimSpace(value)
	if m := top1RE.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	// RE2 has no lookahead, so thresholded mAP matches are blanked out
	// before the base pattern runs; otherwise "mAP@0.5" would hand the
	// base pattern 0.5 as the score.
	masked := map50RE.ReplaceAllString(s, "")
	if m := mapRE.FindStringSubmatch(masked); m != nil {
		return m[1]
	}
	if m := map50RE.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return numRE.FindString(s)
}

// extractAPTriple reduces "Val AP (Easy 95.44 / Medium 93.95 / Hard 85.66)"
// to "95.44 / 93.95 / 85.66". Labeled values win; with no labels the
// first three numbers are taken in order. Returns "" when the string does
// not mention AP at all.
func extractAPTriple(value string) string {
	s := strings.TrimSpace(value)
	if !apPreambleRE.MatchString(s) {
		return ""
	}

	pairs := make(map[string]string, 3)
	for _, m := range apPairRE.FindAllStringSubmatch(s, -1) {
		pairs[canonSplit(m[1])] = m[2]
	}
	for _, m := range apFuncRE.FindAllStringSubmatch(s, -1) {
		pairs[canonSplit(m[1])] = m[2]
	}
	if len(pairs) > 0 {
		return pairs["Easy"] + " / " + pairs["Medium"] + " / " + pairs["Hard"]
	}

	if nums := numRE.FindAllString(s, 3); len(nums) == 3 {
		return strings.Join(nums, " / ")
	}
	return ""
}

func canonSplit(label string) string {
	return strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
}

// extractPSNRSSIM reduces "Avg PSNR: 31.709 / Avg SSIM: 0.8905" to
// "31.709 / 0.8905". With no labels the first two numbers are taken as
// PSNR then SSIM.
func extractPSNRSSIM(value string) string {
	s := strings.TrimSpace(value)

	var psnr, ssim string
	if m := psnrRE.FindStringSubmatch(s); m != nil {
		psnr = m[1]
	}
	if m := ssimRE.FindStringSubmatch(s); m != nil {
		ssim = m[1]
	}
	if psnr != "" || ssim != "" {
		return strings.TrimSpace(psnr + " / " + ssim)
	}

	if nums := numRE.FindAllString(s, 2); len(nums) == 2 {
		return nums[0] + " / " + nums[1]
	}
	return ""
}

// DeriveMetrics adds a Metric column classified from the Raw Accuracy
// cells and rewrites Raw Accuracy and NPU Accuracy down to bare numbers
// ("Top1 76.13" becomes Metric "Top1", Raw Accuracy "76.13"). A no-op
// when the table has no Raw Accuracy column.
func DeriveMetrics(t *table.Table) {
	if !t.HasColumn("Raw Accuracy") {
		return
	}
	if !t.HasColumn("Metric") {
		insertColumnBefore(t, "Metric", "Raw Accuracy")
	}
	hasNPU := t.HasColumn("NPU Accuracy")

	for _, row := range t.Rows {
		raw := row["Raw Accuracy"]
		metric := MetricType(raw)
		if detail := MetricDetail(raw); detail == "AP(Easy)" || detail == "AP(Medium)" || detail == "AP(Hard)" {
			metric = detail
		}
		row["Metric"] = metric

		row["Raw Accuracy"] = reduceAccuracy(metric, raw)
		if hasNPU {
			row["NPU Accuracy"] = reduceAccuracy(metric, row["NPU Accuracy"])
		}
	}
}

func reduceAccuracy(metric, value string) string {
	switch metric {
	case "AP(Easy/Med/Hard)":
		if triple := extractAPTriple(value); triple != "" {
			return triple
		}
	case "PSNR/SSIM":
		if pair := extractPSNRSSIM(value); pair != "" {
			return pair
		}
	}
	return extractPrimaryAccuracy(value)
}

// insertColumnBefore adds a new empty column immediately before anchor.
func insertColumnBefore(t *table.Table, name, anchor string) {
	cols := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		if c == anchor {
			cols = append(cols, name)
		}
		cols = append(cols, c)
	}
	t.Columns = cols
	for _, row := range t.Rows {
		row[name] = ""
	}
}
