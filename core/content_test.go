package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContent(t *testing.T) {
	t.Parallel()

	t.Run("full event line", func(t *testing.T) {
		t.Parallel()

		content := BuildContent([]Event{{
			Title:    "Fossil Walk",
			Date:     "2024-12-05",
			Location: "Calgary, AB",
			Host:     "Dr. Smith",
		}})

		lines := strings.Split(content, "\n")
		assert.Equal(t, "Thursday, December 5: Fossil Walk @ Calgary, AB (Dr. Smith)", lines[0])
	})

	t.Run("accepts alternate date formats", func(t *testing.T) {
		t.Parallel()

		content := BuildContent([]Event{{Title: "Talk", Date: "December 5, 2024"}})
		assert.True(t, strings.HasPrefix(content, "Thursday, December 5: Talk"), content)

		content = BuildContent([]Event{{Title: "Talk", Date: "12/05/2024"}})
		assert.True(t, strings.HasPrefix(content, "Thursday, December 5: Talk"), content)
	})

	t.Run("unparseable date is used verbatim", func(t *testing.T) {
		t.Parallel()

		content := BuildContent([]Event{{Title: "Talk", Date: "sometime soon"}})
		assert.True(t, strings.HasPrefix(content, "sometime soon: Talk"), content)
	})

	t.Run("missing fields are omitted", func(t *testing.T) {
		t.Parallel()

		content := BuildContent([]Event{{Title: "Talk"}})
		assert.True(t, strings.HasPrefix(content, "Talk\n"), content)
		assert.NotContains(t, strings.Split(content, "\n")[0], "@")

		content = BuildContent([]Event{{Date: "2024-12-05"}})
		assert.True(t, strings.HasPrefix(content, "Thursday, December 5: Event"), content)
	})

	t.Run("footer", func(t *testing.T) {
		t.Parallel()

		content := BuildContent([]Event{{Title: "One"}, {Title: "Two"}})

		lines := strings.Split(content, "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "One", lines[0])
		assert.Equal(t, "Two", lines[1])
		assert.Equal(t, "", lines[2])
		assert.Equal(t, "For more information: see https://albertapaleo.org/events/calendar", lines[3])
		assert.Equal(t, "", lines[4])
		assert.Equal(t, "#palaeontology #paleontology #fossils #dinosaurs #events", lines[5])
	})
}
