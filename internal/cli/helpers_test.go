package cli

import "github.com/wallacegibbon/skillkit/internal/skills"

func fullParserCompiledIn() bool {
	_, err := skills.ParserByName("yaml")
	return err == nil
}
