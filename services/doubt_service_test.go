package services

import (
	"testing"

	"github.com/anjiri1684/edu_assist/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDoubt(t *testing.T) {
	db := setupTestDB(t)
	student := createTestUser(t, db, "student", 0)

	t.Run("Success", func(t *testing.T) {
		doubt, err := SubmitDoubt(db, student.ID, "Algebra", "What is x?", nil)
		require.NoError(t, err)

		assert.Equal(t, models.DoubtStatusPending, doubt.Status)
		assert.Equal(t, "Algebra", doubt.Topic)
		assert.Equal(t, student.ID, doubt.StudentID)

		var refreshed models.User
		require.NoError(t, db.First(&refreshed, "id = ?", student.ID).Error)
		assert.Equal(t, 1, refreshed.DoubtsAsked)
	})

	t.Run("EmptyTopic", func(t *testing.T) {
		_, err := SubmitDoubt(db, student.ID, "  ", "What is x?", nil)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("EmptyQuestion", func(t *testing.T) {
		_, err := SubmitDoubt(db, student.ID, "Algebra", "", nil)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		_, err := SubmitDoubt(db, uuid.New(), "Algebra", "What is x?", nil)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAnswerDoubt(t *testing.T) {
	db := setupTestDB(t)
	student := createTestUser(t, db, "student", 0)
	teacher := createTestUser(t, db, "teacher", 0)

	doubt, err := SubmitDoubt(db, student.ID, "Algebra", "What is x?", nil)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		answered, err := AnswerDoubt(db, teacher.ID, doubt.ID, "x=5", nil)
		require.NoError(t, err)

		assert.Equal(t, models.DoubtStatusAnswered, answered.Status)
		require.NotNil(t, answered.Answer)
		assert.Equal(t, "x=5", *answered.Answer)
		require.NotNil(t, answered.TeacherID)
		assert.Equal(t, teacher.ID, *answered.TeacherID)
		assert.NotNil(t, answered.AnsweredAt)
	})

	t.Run("EmptyAnswer", func(t *testing.T) {
		_, err := AnswerDoubt(db, teacher.ID, doubt.ID, "   ", nil)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("UnknownDoubt", func(t *testing.T) {
		_, err := AnswerDoubt(db, teacher.ID, uuid.New(), "x=5", nil)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInitialFeedback(t *testing.T) {
	db := setupTestDB(t)
	student := createTestUser(t, db, "student", 0)
	teacher := createTestUser(t, db, "teacher", 0)

	newAnsweredDoubt := func(t *testing.T) *models.Doubt {
		doubt, err := SubmitDoubt(db, student.ID, "Algebra", "What is x?", nil)
		require.NoError(t, err)
		answered, err := AnswerDoubt(db, teacher.ID, doubt.ID, "x=5", nil)
		require.NoError(t, err)
		return answered
	}

	t.Run("UpvoteHighRatingCreditsTeacher", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		before := userPoints(t, db, teacher.ID)

		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, true, "great"))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, models.DoubtStatusResolved, refreshed.Status)
		assert.True(t, refreshed.Upvoted)
		assert.False(t, refreshed.Downvoted)
		require.NotNil(t, refreshed.Rating)
		assert.Equal(t, 5, *refreshed.Rating)
		assert.Equal(t, 10, refreshed.PointsAwarded)
		assert.Equal(t, before+10, userPoints(t, db, teacher.ID))

		var ledgerRows []models.PointsTransaction
		require.NoError(t, db.Where("user_id = ?", teacher.ID).Find(&ledgerRows).Error)
		assert.NotEmpty(t, ledgerRows)
	})

	t.Run("ReUpvoteDoesNotDoubleCredit", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, true, ""))
		before := userPoints(t, db, teacher.ID)

		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, true, ""))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, 10, refreshed.PointsAwarded)
		assert.Equal(t, before, userPoints(t, db, teacher.ID))
	})

	t.Run("LowRatingUpvoteNoCredit", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		before := userPoints(t, db, teacher.ID)

		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 3, true, ""))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, models.DoubtStatusResolved, refreshed.Status)
		assert.Equal(t, 0, refreshed.PointsAwarded)
		assert.Equal(t, before, userPoints(t, db, teacher.ID))
	})

	t.Run("DownvoteKeepsAnsweredAndRatingUnset", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		before := userPoints(t, db, teacher.ID)

		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, false, "please clarify"))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, models.DoubtStatusAnswered, refreshed.Status)
		assert.True(t, refreshed.Downvoted)
		assert.False(t, refreshed.Upvoted)
		assert.Nil(t, refreshed.Rating)
		require.NotNil(t, refreshed.StudentComment)
		assert.Equal(t, "please clarify", *refreshed.StudentComment)
		assert.Equal(t, before, userPoints(t, db, teacher.ID))
	})

	t.Run("VoteFlipCannotEarnTwice", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, true, ""))
		before := userPoints(t, db, teacher.ID)

		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, false, "actually unclear"))
		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, true, "ok it works"))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, 10, refreshed.PointsAwarded)
		assert.Equal(t, before, userPoints(t, db, teacher.ID))
	})

	t.Run("InvalidRating", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		require.ErrorIs(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 0, true, ""), ErrInvalidInput)
		require.ErrorIs(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 6, true, ""), ErrInvalidInput)
	})

	t.Run("NotOwner", func(t *testing.T) {
		doubt := newAnsweredDoubt(t)
		other := createTestUser(t, db, "student", 0)
		require.ErrorIs(t, SubmitInitialFeedback(db, other.ID, doubt.ID, 5, true, ""), ErrForbidden)
	})

	t.Run("UnknownDoubt", func(t *testing.T) {
		require.ErrorIs(t, SubmitInitialFeedback(db, student.ID, uuid.New(), 5, true, ""), ErrNotFound)
	})
}

func TestFinalFeedback(t *testing.T) {
	db := setupTestDB(t)
	student := createTestUser(t, db, "student", 0)
	teacher := createTestUser(t, db, "teacher", 0)

	doubt, err := SubmitDoubt(db, student.ID, "Algebra", "What is x?", nil)
	require.NoError(t, err)
	_, err = AnswerDoubt(db, teacher.ID, doubt.ID, "x=5", nil)
	require.NoError(t, err)

	t.Run("BothCheckpointsCreditIndependently", func(t *testing.T) {
		require.NoError(t, SubmitInitialFeedback(db, student.ID, doubt.ID, 5, true, ""))
		assert.Equal(t, 10, userPoints(t, db, teacher.ID))

		require.NoError(t, SubmitFinalFeedback(db, student.ID, doubt.ID, 5, true))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, 20, refreshed.PointsAwarded)
		assert.Equal(t, models.DoubtStatusResolved, refreshed.Status)
		assert.Equal(t, 20, userPoints(t, db, teacher.ID))
	})

	t.Run("ResubmittingFinalDoesNotDoubleCredit", func(t *testing.T) {
		require.NoError(t, SubmitFinalFeedback(db, student.ID, doubt.ID, 5, true))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", doubt.ID).Error)
		assert.Equal(t, 20, refreshed.PointsAwarded)
		assert.Equal(t, 20, userPoints(t, db, teacher.ID))
	})

	t.Run("FinalDownvoteStoresRatingWithoutCredit", func(t *testing.T) {
		fresh, err := SubmitDoubt(db, student.ID, "Geometry", "Area of a circle?", nil)
		require.NoError(t, err)
		_, err = AnswerDoubt(db, teacher.ID, fresh.ID, "pi r squared", nil)
		require.NoError(t, err)
		before := userPoints(t, db, teacher.ID)

		require.NoError(t, SubmitFinalFeedback(db, student.ID, fresh.ID, 2, false))

		var refreshed models.Doubt
		require.NoError(t, db.First(&refreshed, "id = ?", fresh.ID).Error)
		require.NotNil(t, refreshed.FinalRating)
		assert.Equal(t, 2, *refreshed.FinalRating)
		assert.False(t, refreshed.FinalUpvoted)
		assert.Equal(t, 0, refreshed.PointsAwarded)
		assert.Equal(t, before, userPoints(t, db, teacher.ID))
	})
}

func TestGetTeacherStats(t *testing.T) {
	db := setupTestDB(t)
	student := createTestUser(t, db, "student", 0)
	teacher := createTestUser(t, db, "teacher", 0)

	t.Run("EmptyStats", func(t *testing.T) {
		stats, err := GetTeacherStats(db, teacher.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalDoubtsAnswered)
		assert.Equal(t, 0, stats.TotalPointsEarned)
		assert.Equal(t, 0.0, stats.AverageRating)
	})

	t.Run("AggregatesAnsweredDoubts", func(t *testing.T) {
		first, err := SubmitDoubt(db, student.ID, "Algebra", "What is x?", nil)
		require.NoError(t, err)
		_, err = AnswerDoubt(db, teacher.ID, first.ID, "x=5", nil)
		require.NoError(t, err)
		require.NoError(t, SubmitInitialFeedback(db, student.ID, first.ID, 5, true, ""))
		require.NoError(t, SubmitFinalFeedback(db, student.ID, first.ID, 5, true))

		second, err := SubmitDoubt(db, student.ID, "Geometry", "Area of a circle?", nil)
		require.NoError(t, err)
		_, err = AnswerDoubt(db, teacher.ID, second.ID, "pi r squared", nil)
		require.NoError(t, err)
		require.NoError(t, SubmitFinalFeedback(db, student.ID, second.ID, 4, true))

		stats, err := GetTeacherStats(db, teacher.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalDoubtsAnswered)
		assert.Equal(t, 30, stats.TotalPointsEarned)
		assert.Equal(t, 4.5, stats.AverageRating)
	})
}
