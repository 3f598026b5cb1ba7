package tui

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// visibleRange computes the scroll window [start, end) that keeps
// selected visible within a list of total items and height rows.
func visibleRange(selected, total, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > total {
		end = total
	}
	return start, end
}
