package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

// Store implements store.Store on top of a mongo database.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) students() *mongo.Collection   { return s.db.Collection("students") }
func (s *Store) attendance() *mongo.Collection { return s.db.Collection("attendance") }
func (s *Store) classes() *mongo.Collection    { return s.db.Collection("classes") }
func (s *Store) teachers() *mongo.Collection   { return s.db.Collection("teachers") }

// EnsureIndexes creates the unique (studentId, date) attendance index and
// the unique teacher email index. Safe to call on every boot.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.attendance().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.teachers().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.students().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "class", Value: 1}, {Key: "section", Value: 1}, {Key: "rollNumber", Value: 1}},
	})
	return err
}

func (s *Store) ListStudents(ctx context.Context, f store.StudentFilter) ([]models.Student, error) {
	filter := bson.M{}
	if f.Class != "" {
		filter["class"] = f.Class
	}
	if f.Section != "" {
		filter["section"] = f.Section
	}

	cursor, err := s.students().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "rollNumber", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Store) GetStudent(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := s.students().FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (s *Store) CreateStudent(ctx context.Context, student *models.Student) error {
	student.ID = primitive.NewObjectID()
	student.CreatedAt = time.Now().UTC()
	_, err := s.students().InsertOne(ctx, student)
	return err
}

func (s *Store) UpdateStudent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Student, error) {
	var student models.Student
	err := s.students().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (s *Store) DeleteStudent(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.students().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// UpsertDayAttendance pins the mark's date to start of day and runs a
// single FindOneAndUpdate with upsert, so two concurrent marks for the
// same student and day cannot both insert. The unique index backstops it.
func (s *Store) UpsertDayAttendance(ctx context.Context, mark models.Attendance) (*models.Attendance, error) {
	day, _ := models.DayBounds(mark.Date)

	var out models.Attendance
	err := s.attendance().FindOneAndUpdate(ctx,
		bson.M{"studentId": mark.StudentID, "date": day},
		bson.M{
			"$set": bson.M{
				"studentName": mark.StudentName,
				"status":      mark.Status,
				"markedBy":    mark.MarkedBy,
				"timestamp":   time.Now().UTC(),
			},
			"$setOnInsert": bson.M{
				"studentId": mark.StudentID,
				"date":      day,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrDuplicate
		}
		return nil, err
	}
	return &out, nil
}

func (s *Store) ListAttendanceBetween(ctx context.Context, start, end time.Time) ([]models.Attendance, error) {
	cursor, err := s.attendance().Find(ctx,
		bson.M{"date": bson.M{"$gte": start, "$lte": end}},
		options.Find().SetSort(bson.D{{Key: "studentName", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) ListStudentAttendance(ctx context.Context, studentID primitive.ObjectID, r store.DateRange) ([]models.Attendance, error) {
	filter := bson.M{"studentId": studentID}
	dateFilter := bson.M{}
	if r.From != nil {
		dateFilter["$gte"] = *r.From
	}
	if r.To != nil {
		dateFilter["$lte"] = *r.To
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	cursor, err := s.attendance().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) ListClasses(ctx context.Context) ([]models.Class, error) {
	cursor, err := s.classes().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "className", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *Store) CreateClass(ctx context.Context, cl *models.Class) error {
	cl.ID = primitive.NewObjectID()
	cl.CreatedAt = time.Now().UTC()
	if cl.Sections == nil {
		cl.Sections = []string{}
	}
	_, err := s.classes().InsertOne(ctx, cl)
	return err
}

func (s *Store) UpdateClass(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Class, error) {
	var cl models.Class
	err := s.classes().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &cl, nil
}

func (s *Store) DeleteClass(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.classes().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	cursor, err := s.teachers().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	teachers := []models.Teacher{}
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (s *Store) GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var t models.Teacher
	err := s.teachers().FindOne(ctx, bson.M{"email": email}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTeacher(ctx context.Context, t *models.Teacher) error {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now().UTC()
	if t.AssignedClasses == nil {
		t.AssignedClasses = []models.ClassAssignment{}
	}
	_, err := s.teachers().InsertOne(ctx, t)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

func (s *Store) UpdateTeacher(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Teacher, error) {
	var t models.Teacher
	err := s.teachers().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrDuplicate
		}
		return nil, err
	}
	return &t, nil
}
