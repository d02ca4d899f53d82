package records

// DefaultEmployees returns a fresh copy of the built-in employee list in
// construction order. Callers may sort it in place.
func DefaultEmployees() []Employee {
	return []Employee{
		{Name: "Ravi", Age: 25, Salary: 55000},
		{Name: "Anita", Age: 30, Salary: 72000},
		{Name: "Karan", Age: 22, Salary: 45000},
		{Name: "Meena", Age: 28, Salary: 60000},
	}
}

// DefaultStudents returns a fresh copy of the built-in student list.
func DefaultStudents() []Student {
	return []Student{
		{Name: "Aman", Marks: 82.5},
		{Name: "Pooja", Marks: 68.0},
		{Name: "Ravi", Marks: 91.2},
		{Name: "Simran", Marks: 77.8},
		{Name: "Karan", Marks: 72.4},
	}
}

// DefaultProducts returns a fresh copy of the built-in product list.
func DefaultProducts() []Product {
	return []Product{
		{Name: "Laptop", Price: 75000, Category: "Electronics"},
		{Name: "Mobile", Price: 45000, Category: "Electronics"},
		{Name: "Table", Price: 8000, Category: "Furniture"},
		{Name: "Chair", Price: 3500, Category: "Furniture"},
		{Name: "Jeans", Price: 2000, Category: "Clothing"},
		{Name: "Shirt", Price: 1500, Category: "Clothing"},
		{Name: "TV", Price: 60000, Category: "Electronics"},
	}
}
