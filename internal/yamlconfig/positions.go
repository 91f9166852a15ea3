package yamlconfig

import "gopkg.in/yaml.v3"

// positions holds the source lines of document parts whose decode structs do
// not keep a yaml.Node. The strict decode checks the shape; this index only
// supplies lines.
type positions struct {
	project     int
	plugins     []int
	constraints map[string]int
}

func indexPositions(root *yaml.Node) positions {
	pos := positions{constraints: make(map[string]int)}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return pos
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "project":
			pos.project = key.Line
		case "plugins":
			for _, item := range value.Content {
				pos.plugins = append(pos.plugins, item.Line)
			}
		case "constraints":
			for j := 0; j+1 < len(value.Content); j += 2 {
				pos.constraints[value.Content[j].Value] = value.Content[j].Line
			}
		}
	}
	return pos
}

func (p positions) plugin(i int) int {
	if i < len(p.plugins) {
		return p.plugins[i]
	}
	return 0
}
