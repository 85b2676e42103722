package tree

var scenarios = map[string]func() *Element{
	"A":             scenarioA,
	"B":             scenarioB,
	"buttons":       scenarioButton,
	"deep left":     divergenceDeepLeft,
	"deep right":    divergenceDeepRight,
	"single":        func() *Element { return Create("html").AddClass("blue-theme") },
	"special chars": scenarioSpecialClasses,
	"two main divs": scenarioTwoMains,
}

// html > body > div.main-content > (span.some-other-content, p.some-other-content)
func scenarioA() *Element {
	html, body, div := Create("html"), Create("body"), Create("div")
	html.MustAppendChild(body)
	body.MustAppendChild(div)
	div.AddClass("main-content")
	span := Create("span").AddClass("some-other-content")
	div.MustAppendChild(span)
	p := Create("p").AddClass("some-other-content")
	div.MustAppendChild(p)
	return html
}

// html > body.main-content > (ul > li, div > p.some-other-content)
func scenarioB() *Element {
	html, body, ul, li := Create("html"), Create("body"), Create("ul"), Create("li")
	html.MustAppendChild(body)
	body.MustAppendChild(ul)
	ul.MustAppendChild(li)
	body.AddClass("main-content")

	div, p := Create("div"), Create("p")
	body.MustAppendChild(div)
	div.MustAppendChild(p)
	p.AddClass("some-other-content")
	return html
}

// body.main-content > (div > (p > span, code), section, ul > li > (a, button.some-other-content))
func scenarioButton() *Element {
	body, div, p, span, code := Create("body"), Create("div"), Create("p"), Create("span"), Create("code")
	body.MustAppendChild(div)
	div.MustAppendChild(p)
	p.MustAppendChild(span)
	div.MustAppendChild(code)
	body.AddClass("main-content")

	body.MustAppendChild(Create("section"))

	ul, li := Create("ul"), Create("li")
	body.MustAppendChild(ul)
	ul.MustAppendChild(li)
	li.MustAppendChild(Create("a"))
	li.MustAppendChild(Create("button").AddClass("some-other-content"))
	return body
}

// html > body > (div.main-content > span, div.main-content > (span.some-other-content, p.some-other-content))
func scenarioTwoMains() *Element {
	html, body := Create("html"), Create("body")
	html.MustAppendChild(body)
	body.MustAppendChild(Create("div").AddClass("main-content").MustAppendChild(Create("span")))

	div2 := Create("div").AddClass("main-content")
	body.MustAppendChild(div2)
	div2.MustAppendChild(Create("span").AddClass("some-other-content"))
	div2.MustAppendChild(Create("p").AddClass("some-other-content"))
	return html
}

// root.anc > (left > left-inner > target#deep, right > target#shallow)
// BFS finds the shallow match on the right, left to right DFS the deep
// one on the left.
func divergenceDeepLeft() *Element {
	root := Create("root").AddClass("anc")
	left, inner := Create("left"), Create("left-inner")
	root.MustAppendChild(left)
	left.MustAppendChild(inner)
	inner.MustAppendChild(Create("deep").AddClass("tgt"))

	right := Create("right")
	root.MustAppendChild(right)
	right.MustAppendChild(Create("shallow").AddClass("tgt"))
	return root
}

// root.anc > (left > target#shallow, right > right-inner > target#deep)
// BFS and left to right DFS find the shallow match, right-biased DFS the
// deep one in the last subtree.
func divergenceDeepRight() *Element {
	root := Create("root").AddClass("anc")
	left := Create("left")
	root.MustAppendChild(left)
	left.MustAppendChild(Create("shallow").AddClass("tgt"))

	right, inner := Create("right"), Create("right-inner")
	root.MustAppendChild(right)
	right.MustAppendChild(inner)
	inner.MustAppendChild(Create("deep").AddClass("tgt"))
	return root
}

// div.p&q > (a.x"y.p&q, span.a\u00A0b)
func scenarioSpecialClasses() *Element {
	div := Create("div").AddClass("p&q")
	div.MustAppendChild(Create("a").AddClass(`x"y`).AddClass("p&q"))
	div.MustAppendChild(Create("span").AddClass("a\u00A0b"))
	return div
}
