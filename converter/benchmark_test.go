package converter

import "testing"

func BenchmarkConvert(b *testing.B) {
	conv, err := New(Config{})
	if err != nil {
		b.Fatalf("failed to create converter: %v", err)
	}

	input := `# Heading

This is **bold** text with [link](https://example.com) and ![shot](shot-7.png).

:::columns
:::column
### Left
Left text
:::
:::column{.muted}
Right text
:::
:::

- one
- two

| Name | Value |
| --- | --- |
| A | 1 |
| B | 2 |
`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(input); err != nil {
			b.Fatalf("convert failed: %v", err)
		}
	}
}
