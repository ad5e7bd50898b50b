package dynamic

// In-page probes. Each probe is one self-contained IIFE: every helper it
// needs is declared inside the expression, because only the expression text
// reaches the page context. Results are capped so a pathological page cannot
// return unbounded samples.

// ColorProbeJS samples the computed foreground color, effective background
// color (walking up to the first non-transparent ancestor) and font metrics
// of every element that directly contains text.
const ColorProbeJS = `(() => {
	const out = [];
	for (const el of document.querySelectorAll('body *')) {
		if (out.length >= 400) break;
		const hasText = [...el.childNodes].some(
			n => n.nodeType === Node.TEXT_NODE && n.textContent.trim() !== '');
		if (!hasText) continue;
		const cs = window.getComputedStyle(el);
		if (cs.display === 'none' || cs.visibility === 'hidden') continue;
		let bg = 'rgba(0, 0, 0, 0)';
		for (let node = el; node; node = node.parentElement) {
			const b = window.getComputedStyle(node).backgroundColor;
			if (b && b !== 'transparent' && !/rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*0\s*\)/.test(b)) {
				bg = b;
				break;
			}
		}
		out.push({
			tag: el.tagName.toLowerCase(),
			id: el.id || '',
			fg: cs.color,
			bg: bg,
			font_size: parseFloat(cs.fontSize) || 0,
			font_weight: cs.fontWeight || '',
		});
	}
	return out;
})()`

// FocusProbeJS visits every focusable element, focuses it, and reports
// whether any visible indicator (outline, box-shadow or border change)
// appeared, together with its bounding box and tabindex.
const FocusProbeJS = `(() => {
	const out = [];
	const selector = 'button, [href], input, select, textarea, [tabindex]';
	for (const el of document.querySelectorAll(selector)) {
		if (out.length >= 400) break;
		const cs = window.getComputedStyle(el);
		if (cs.display === 'none' || cs.visibility === 'hidden') continue;
		const before = {
			shadow: cs.boxShadow,
			border: cs.borderColor + '/' + cs.borderWidth,
		};
		let indicator = false;
		try {
			el.focus({ preventScroll: true });
			const fs = window.getComputedStyle(el);
			indicator =
				(fs.outlineStyle !== 'none' && parseFloat(fs.outlineWidth) > 0) ||
				fs.boxShadow !== before.shadow ||
				fs.borderColor + '/' + fs.borderWidth !== before.border;
			el.blur();
		} catch (e) {
			// Elements that refuse focus simply report no indicator data.
		}
		const rect = el.getBoundingClientRect();
		const ti = el.getAttribute('tabindex');
		out.push({
			tag: el.tagName.toLowerCase(),
			id: el.id || '',
			tabindex: ti === null ? '' : ti,
			disabled: !!el.disabled,
			has_focus_indicator: indicator,
			width: rect.width,
			height: rect.height,
		});
	}
	return out;
})()`

// ColorSample is one ColorProbeJS record.
type ColorSample struct {
	Tag        string  `json:"tag"`
	ID         string  `json:"id"`
	Foreground string  `json:"fg"`
	Background string  `json:"bg"`
	FontSize   float64 `json:"font_size"`
	FontWeight string  `json:"font_weight"`
}

// FocusSample is one FocusProbeJS record.
type FocusSample struct {
	Tag               string  `json:"tag"`
	ID                string  `json:"id"`
	TabIndex          string  `json:"tabindex"`
	Disabled          bool    `json:"disabled"`
	HasFocusIndicator bool    `json:"has_focus_indicator"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
}

// Focusable reports whether the sampled element is keyboard reachable
// (tabindex "-1" opts an element out of the tab order).
func (s FocusSample) Focusable() bool {
	return s.TabIndex != "-1"
}

// Location returns a best-effort locator for a sample.
func sampleLocation(id string) string {
	if id == "" {
		return ""
	}
	return "#" + id
}
