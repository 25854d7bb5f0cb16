package update

const helpMarkdown = `# daygrid

## Day view
- ` + "`a`" + ` quick add (supports ` + "`@YYYY-MM-DD`" + ` and ` + "`HH:MM-HH:MM`" + ` tokens)
- ` + "`space`" + ` toggle complete, ` + "`x`" + ` delete, ` + "`C`" + ` clear completed
- ` + "`j/k`" + ` move

## Calendar view
- ` + "`h/l`" + ` previous/next month
- arrows move the cell cursor, ` + "`enter`" + ` selects a day
- ` + "`t`" + ` jump to today

## Everywhere
- ` + "`e`" + ` open the task detail editor (title + steps)
- ` + "`/`" + ` command palette: add, goto, month, clear
- ` + "`?`" + ` toggle this help, ` + "`q`" + ` quit
`
