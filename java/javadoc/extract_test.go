package javadoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractBlockTags(t *testing.T) {
	block := NewCommentBlock(`/**
     * Adds two numbers.
     *
     * @param a the first
     * @param b
     * @return the sum
     * @throws IllegalArgumentException when negative
     * @exception java.io.IOException never
     * @see Math#addExact
     */`, 10, 5)

	want := []Tag{
		{Kind: KindParam, Name: "param", Line: 13, Column: 8, FirstArg: "a", Rest: "the first"},
		{Kind: KindParam, Name: "param", Line: 14, Column: 8, FirstArg: "b"},
		{Kind: KindReturn, Name: "return", Line: 15, Column: 8, Rest: "the sum"},
		{Kind: KindThrows, Name: "throws", Line: 16, Column: 8, FirstArg: "IllegalArgumentException", Rest: "when negative"},
		{Kind: KindThrows, Name: "exception", Line: 17, Column: 8, FirstArg: "java.io.IOException", Rest: "never"},
		{Kind: KindSeeOrOther, Name: "see", Line: 18, Column: 8, Rest: "Math#addExact"},
	}

	if diff := cmp.Diff(want, Extract(block)); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSingleLine(t *testing.T) {
	block := NewCommentBlock("/** @return the answer */", 3, 5)

	want := []Tag{
		{Kind: KindReturn, Name: "return", Line: 3, Column: 9, Rest: "the answer"},
	}
	if diff := cmp.Diff(want, Extract(block)); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractArgumentStopsAtCommentEnd(t *testing.T) {
	block := NewCommentBlock("/** @param x*/", 1, 1)

	tags := Extract(block)
	if len(tags) != 1 {
		t.Fatalf("expected 1 tag, got %d: %+v", len(tags), tags)
	}
	if tags[0].FirstArg != "x" || tags[0].Rest != "" {
		t.Errorf("expected FirstArg x and empty Rest, got %+v", tags[0])
	}
}

func TestExtractMissingArgumentIsUnknown(t *testing.T) {
	block := NewCommentBlock("/**\n * @param\n * @throws   \n */", 1, 1)

	tags := Extract(block)
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d: %+v", len(tags), tags)
	}
	for _, tag := range tags {
		if tag.Kind != KindUnknown {
			t.Errorf("expected KindUnknown for @%s, got %v", tag.Name, tag.Kind)
		}
	}
}

func TestExtractBlockTagOnlyAtLineStart(t *testing.T) {
	block := NewCommentBlock("/**\n * Send mail to user@param.org or see @return.\n */", 1, 1)

	if tags := Extract(block); len(tags) != 0 {
		t.Errorf("expected no tags, got %+v", tags)
	}
}

func TestExtractInheritDoc(t *testing.T) {
	block := NewCommentBlock("/**\n * {@inheritDoc} and { @inheritDoc }\n * @return {@inheritDoc}\n */", 1, 1)

	want := []Tag{
		{Kind: KindInheritDoc, Name: "inheritDoc", Line: 2, Column: 4},
		{Kind: KindInheritDoc, Name: "inheritDoc", Line: 2, Column: 22},
		{Kind: KindReturn, Name: "return", Line: 3, Column: 4, Rest: "{@inheritDoc}"},
		{Kind: KindInheritDoc, Name: "inheritDoc", Line: 3, Column: 12},
	}
	if diff := cmp.Diff(want, Extract(block)); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractNil(t *testing.T) {
	if tags := Extract(nil); tags != nil {
		t.Errorf("expected nil, got %+v", tags)
	}
}

func TestNewCommentBlockCRLF(t *testing.T) {
	block := NewCommentBlock("/**\r\n * @return x\r\n */", 1, 1)
	if len(block.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(block.Lines))
	}
	if block.Text() != "/**\n * @return x\n */" {
		t.Errorf("unexpected text %q", block.Text())
	}
}
