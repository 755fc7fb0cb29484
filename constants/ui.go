package constants

// Full-screen state messages
const (
	MessageNewGame = "PRESS 'ENTER' TO START THE GAME. 'Q' TO QUIT"
	MessageWon     = "CONGRATS! YOU WON. PRESS 'ENTER' TO PLAY AGAIN. 'Q' TO QUIT"
	MessageLost    = "YOU LOST. PRESS 'ENTER' TO PLAY AGAIN. 'Q' TO QUIT"
)

// Status line layout
const (
	// StatusX is the column where the status line starts
	StatusX = 2

	// StatusY is the row below the viewport that holds the status line
	StatusY = MaxY + 1
)
