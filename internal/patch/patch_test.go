package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leasePatch = `diff --git a/lease.txt b/lease.txt
index 1111111..2222222 100644
--- a/lease.txt
+++ b/lease.txt
@@ -1,4 +1,5 @@
 This lease is made between the parties.
-Rent is Rs. 40,000 per month.
-Deposit is two months rent.
+Rent is Rs. 45,000 per month.
+Deposit is three months rent.
+A late fee applies.
 Governed by the laws of India.
diff --git a/schedule.txt b/schedule.txt
new file mode 100644
index 0000000..3b18e13
--- /dev/null
+++ b/schedule.txt
@@ -0,0 +1,2 @@
+Item one
+Item two
`

func TestParseUnifiedDiffPairsDeleteAndAddRuns(t *testing.T) {
	rows, err := ParseUnifiedDiff([]byte(leasePatch))
	require.NoError(t, err)
	require.Len(t, rows, 7)

	kinds := make([]RowKind, 0, 5)
	for _, r := range rows[:5] {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []RowKind{RowContext, RowChange, RowChange, RowAdd, RowContext}, kinds)

	assert.Equal(t, 2, rows[1].OldLine)
	assert.Equal(t, 2, rows[1].NewLine)
	assert.Equal(t, "Rent is Rs. 40,000 per month.", rows[1].OldText)
	assert.Equal(t, "Rent is Rs. 45,000 per month.", rows[1].NewText)
	assert.False(t, rows[3].HasOld())
	assert.Equal(t, 4, rows[3].NewLine)
	assert.Equal(t, 4, rows[4].OldLine)
	assert.Equal(t, 5, rows[4].NewLine)

	assert.Equal(t, RowAdd, rows[5].Kind)
	assert.Equal(t, "schedule.txt", rows[5].Path)
	assert.Equal(t, 1, rows[5].NewLine)
}

func TestParseUnifiedDiffDeleteOnly(t *testing.T) {
	raw := []byte(`--- a/x.txt
+++ b/x.txt
@@ -1,2 +1,1 @@
 keep
-gone
`)
	rows, err := ParseUnifiedDiff(raw)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, RowDelete, rows[1].Kind)
	assert.False(t, rows[1].HasNew())
}

func TestFilesAndTexts(t *testing.T) {
	rows, err := ParseUnifiedDiff([]byte(leasePatch))
	require.NoError(t, err)

	assert.Equal(t, []string{"lease.txt", "schedule.txt"}, Files(rows))

	oldText, newText := Texts(rows, "")
	assert.Equal(t, "This lease is made between the parties.\n"+
		"Rent is Rs. 40,000 per month.\n"+
		"Deposit is two months rent.\n"+
		"Governed by the laws of India.", oldText)
	assert.Equal(t, "This lease is made between the parties.\n"+
		"Rent is Rs. 45,000 per month.\n"+
		"Deposit is three months rent.\n"+
		"A late fee applies.\n"+
		"Governed by the laws of India.", newText)

	oldText, newText = Texts(rows, "schedule.txt")
	assert.Equal(t, "", oldText)
	assert.Equal(t, "Item one\nItem two", newText)
}

func TestParseUnifiedDiffRejectsGarbageHunk(t *testing.T) {
	raw := []byte(`--- a/x.txt
+++ b/x.txt
@@ -1,1 +1,1 @@
?what
`)
	_, err := ParseUnifiedDiff(raw)
	require.Error(t, err)
}
