package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"synvec": {
		root,
		"synvec",
		0,
		"",
		"",
	},
	"synvec_design": {
		child,
		"design",
		0,
		"synvec",
		"",
	},
	"synvec_ori": {
		child,
		"ori",
		1,
		"synvec",
		"",
	},
	"synvec_find": {
		childParent,
		"find",
		2,
		"synvec",
		"",
	},
	"synvec_find_part": {
		grandchild,
		"part",
		0,
		"find",
		"synvec",
	},
	"synvec_find_gene": {
		grandchild,
		"gene",
		1,
		"find",
		"synvec",
	},
	"synvec_set": {
		childParent,
		"set",
		3,
		"synvec",
		"",
	},
	"synvec_set_part": {
		grandchild,
		"part",
		0,
		"set",
		"synvec",
	},
	"synvec_set_gene": {
		grandchild,
		"gene",
		1,
		"set",
		"synvec",
	},
	"synvec_delete": {
		childParent,
		"delete",
		4,
		"synvec",
		"",
	},
	"synvec_delete_part": {
		grandchild,
		"part",
		0,
		"delete",
		"synvec",
	},
	"synvec_delete_gene": {
		grandchild,
		"gene",
		1,
		"delete",
		"synvec",
	},
}

// docsCmd parses the commands and outputs Markdown documentation files
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the synvec commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTreeCustom(rootCmd, "./docs", filePrepender, linkHandler); err != nil {
			fmt.Println(err.Error())
		}
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, m.title, m.parent, m.grandParent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "synvec" {
		return "/"
	}
	return base
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
