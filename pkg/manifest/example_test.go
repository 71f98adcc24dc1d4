package manifest_test

import (
	"fmt"

	"squarely/pkg/layout"
	"squarely/pkg/layout/expand"
	"squarely/pkg/manifest"
	"squarely/pkg/tree"
)

func ExampleDecode() {
	data := []byte(`
[[view]]
id = "window"

[[view]]
id = "toolbar"
container = "window"

[[rule]]
target = "toolbar"
apply = "horizontal"

[[rule]]
target = "toolbar"
apply = "height"
constant = 44.0
`)

	doc, err := manifest.Decode(data, manifest.FormatTOML)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	fmt.Printf("%d views, %d rules\n", len(doc.Views), len(doc.Rules))
	// Output: 2 views, 2 rules
}

func ExampleDocument_Descriptors() {
	data := []byte(`
[[view]]
id = "window"

[[view]]
id = "banner"
container = "window"

[[rule]]
target = "banner"
apply = "horizontal"

[[rule]]
target = "banner"
apply = "height"
constant = 64.0
`)

	doc, err := manifest.Decode(data, manifest.FormatTOML)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	root := tree.NewRoot("window")
	banner := root.NewChild("banner")
	nodes := map[string]layout.Node{"window": root, "banner": banner}

	groups, err := doc.Descriptors(func(id string) (layout.Node, bool) {
		n, ok := nodes[id]
		return n, ok
	})
	if err != nil {
		fmt.Println("compile:", err)
		return
	}

	records, err := expand.Apply(banner, groups["banner"]...)
	if err != nil {
		fmt.Println("expand:", err)
		return
	}
	for _, r := range records {
		fmt.Println(r)
	}
	// Output:
	// banner.left == window.left
	// banner.right == window.right
	// banner.height == 64
}
