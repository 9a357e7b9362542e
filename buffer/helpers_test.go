package buffer

import "github.com/iw2rmb/wisereader/styled"

func storeOf(text string) *Store {
	return NewStore(styled.Lines(text), 1)
}

type fakeRenderer struct {
	prefix string
	err    error
}

func (r fakeRenderer) Render(content string, _ int) ([]styled.Line, error) {
	if r.err != nil {
		return nil, r.err
	}
	lines := styled.Lines(content)
	for i, l := range lines {
		lines[i] = styled.NewLine(r.prefix + l.Raw)
	}
	return lines, nil
}
